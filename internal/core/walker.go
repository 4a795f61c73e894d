package core

import (
	"context"
	"errors"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

// PackageVisit describes one package reached during a walk. Path holds
// the package names below the walk root and is empty for the root
// itself.
type PackageVisit struct {
	Path        []string
	Subpackages []string
	Objects     []types.ObjectRef
}

// WalkFunc is called once per visited package.
type WalkFunc func(visit PackageVisit) error

// SkipSubpackages is returned by a WalkFunc to keep the walk from
// descending into the subpackages of the visited package. Siblings of
// the visited package are still walked.
var SkipSubpackages = errors.New("skip subpackages")

// WalkPackages traverses the package tree rooted at root in pre-order,
// fetching each package's contents on demand and handing them to fn.
// Subpackages are visited in server order. A non-nil error from fn
// other than SkipSubpackages aborts the walk.
func WalkPackages(ctx context.Context, browser ports.PackageBrowserPort, root string, fn WalkFunc) error {
	assert.NotEmpty(ctx, root, "walk root package must be set")
	return walkPackage(ctx, browser, root, nil, fn)
}

func walkPackage(ctx context.Context, browser ports.PackageBrowserPort, name string, path []string, fn WalkFunc) error {
	contents, err := browser.Browse(ctx, name)
	if err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("package", name).
		Int("subpackages", len(contents.Subpackages)).
		Int("objects", len(contents.Objects)).
		Msg("package visited")

	visit := PackageVisit{
		Path:        path,
		Subpackages: contents.Subpackages,
		Objects:     contents.Objects,
	}
	if err := fn(visit); err != nil {
		if errors.Is(err, SkipSubpackages) {
			return nil
		}
		return err
	}

	for _, sub := range contents.Subpackages {
		subPath := append(append([]string{}, path...), sub)
		if err := walkPackage(ctx, browser, sub, subPath, fn); err != nil {
			return err
		}
	}
	return nil
}

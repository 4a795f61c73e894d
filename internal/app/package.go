package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"abap-checkout/internal/core"
	"abap-checkout/internal/types"
)

const dotAbapGitFile = ".abapgit.xml"
const defaultStartingFolder = "src"

// CheckoutPackage initializes an abapGit repository directory and
// exports the objects of the package tree into it. Objects without a
// registered exporter are reported on the diagnostic writer and
// skipped; every other failure aborts the run and leaves the files
// written so far in place.
func (s Service) CheckoutPackage(ctx context.Context, req CheckoutPackageRequest) (CheckoutPackageResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CheckoutPackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	folder := strings.TrimSpace(req.StartingFolder)
	if folder == "" {
		folder = defaultStartingFolder
	}

	repoDir, err := s.initRepoDir(req.Directory, name, folder)
	if err != nil {
		return CheckoutPackageResult{}, err
	}
	sourceDir := filepath.Join(repoDir, folder)
	registry := core.NewExportRegistry(s.Objects, s.Metadata)

	result := CheckoutPackageResult{RepoDir: repoDir}
	err = core.WalkPackages(ctx, s.Browser, name, func(visit core.PackageVisit) error {
		destDir := core.PackageDir(sourceDir, visit.Path)
		if err := s.exportObjects(ctx, registry, visit.Objects, destDir, &result); err != nil {
			return err
		}
		result.Packages++
		if !req.Recursive {
			return core.SkipSubpackages
		}
		return nil
	})
	if err != nil {
		return CheckoutPackageResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("package", name).
		Int("packages", result.Packages).
		Int("exported", result.Exported).
		Int("unsupported", result.Unsupported).
		Msg("package checkout complete")
	return result, nil
}

// initRepoDir ensures the repository directory exists and writes the
// .abapgit.xml settings file. The directory defaults to the package
// name under the working directory.
func (s Service) initRepoDir(directory string, name string, folder string) (string, error) {
	repoDir := strings.TrimSpace(directory)
	if repoDir == "" {
		repoDir = name
	}
	repoDir, err := filepath.Abs(repoDir)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve repository directory").
			WithCause(err)
	}
	if err := core.EnsureDir(repoDir); err != nil {
		return "", err
	}

	payload, err := s.Metadata.RepoMetadata(types.NewDotAbapGit("/" + folder + "/"))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(repoDir, dotAbapGitFile), payload, 0644); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write repository settings file").
			WithCause(err)
	}
	return repoDir, nil
}

// exportObjects writes the objects of one package into dir. The
// directory is created even when the package holds no exportable
// objects.
func (s Service) exportObjects(ctx context.Context, registry core.ExportRegistry, objects []types.ObjectRef, dir string, result *CheckoutPackageResult) error {
	if err := core.EnsureDir(dir); err != nil {
		return err
	}
	for _, obj := range objects {
		err := registry.Dispatch(ctx, obj, dir)
		if err == nil {
			result.Exported++
			continue
		}
		if core.IsUnsupported(err) {
			fmt.Fprintf(s.diag(), "Unsupported object: %s %s\n", obj.Type, obj.Name)
			result.Unsupported++
			continue
		}
		return err
	}
	return nil
}

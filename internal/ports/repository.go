package ports

import (
	"context"

	"abap-checkout/internal/types"
)

// ObjectRepositoryPort fetches development object sources and
// attributes from an ABAP system.
type ObjectRepositoryPort interface {
	FetchProgram(ctx context.Context, name string) (string, error)
	FetchInterface(ctx context.Context, name string) (string, error)
	FetchClass(ctx context.Context, name string) (types.Class, error)
}

// PackageBrowserPort lists the direct contents of a package.
type PackageBrowserPort interface {
	Browse(ctx context.Context, name string) (types.PackageContents, error)
}

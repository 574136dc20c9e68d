package ports

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=mirror.go -destination=mocks/mock_mirror.go -package=mocks

// Mirror keeps a source mirror populated. Fetch is best effort and never fails the build.
type Mirror interface {
	Has(spec domain.PackageSpec) bool
	Fetch(ctx context.Context, spec domain.PackageSpec)
}

// MirrorFactory opens a mirror backed by a package manager's source registry.
type MirrorFactory interface {
	Open(location string, sources SourceRegistry) Mirror
}

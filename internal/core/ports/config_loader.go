package ports

import "github.com/WIPACrepo/cvmfs/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader loads the build configuration.
type ConfigLoader interface {
	// Load reads the configuration at path. A missing file yields the defaults unless required is set.
	Load(path string, required bool) (domain.BuildConfig, error)
}

// PackageListLoader reads package-list files.
type PackageListLoader interface {
	Load(path string) (*domain.PackageList, error)
}

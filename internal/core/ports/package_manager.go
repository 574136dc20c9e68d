package ports

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// Prober reports what is already installed.
type Prober interface {
	// ListInstalled returns the packages built with a compiler whose spec contains compiler.
	// An empty compiler matches every record.
	ListInstalled(ctx context.Context, compiler string) (*domain.InstalledIndex, error)
}

// Explainer asks the solver whether a spec concretizes under its constraints and pins.
type Explainer interface {
	Explain(ctx context.Context, req domain.InstallRequest) (domain.Diagnostic, error)
}

// Installer installs and removes packages.
type Installer interface {
	Install(ctx context.Context, req domain.InstallRequest) error
	Uninstall(ctx context.Context, identifier string) error
	// InstallEnvironment writes manifest to path, then activates, concretizes and installs it in one session.
	InstallEnvironment(ctx context.Context, manifest domain.EnvironmentManifest, path string, jobs int) error
}

// CompilerRegistry manages the compilers the package manager can build with.
type CompilerRegistry interface {
	FindInstalled(ctx context.Context) ([]domain.InstalledRecord, error)
	Compilers(ctx context.Context) ([]domain.RegisteredCompiler, error)
	// FindCompilers registers the host's system compilers.
	FindCompilers(ctx context.Context) error
	AddCompiler(ctx context.Context, prefix string) error
	// Location returns the install prefix of spec, or "" when it is not installed.
	Location(ctx context.Context, spec string) (string, error)
}

// Viewer projects installed packages into a view directory.
type Viewer interface {
	ViewAdd(ctx context.Context, req domain.ViewRequest) error
	ViewRemove(ctx context.Context, dir string, name string) error
}

// SourceRegistry manages recipe repositories and mirrors.
type SourceRegistry interface {
	Repos(ctx context.Context) ([]string, error)
	AddRepo(ctx context.Context, path string) error
	RemoveRepo(ctx context.Context, name string) error
	Mirrors(ctx context.Context) (string, error)
	AddMirror(ctx context.Context, name string, url string) error
	CreateMirror(ctx context.Context, dir string, spec string) error
}

// PackageManager is one package manager instance rooted inside an SROOT.
type PackageManager interface {
	Prober
	Explainer
	Installer
	CompilerRegistry
	Viewer
	SourceRegistry

	// Tag returns the release tag the instance was provisioned from.
	Tag() string
	Arch(ctx context.Context) (domain.Arch, error)
	// Clean removes cached stage and download directories.
	Clean(ctx context.Context) error
}

// PackageManagerFactory provisions and opens package manager instances.
type PackageManagerFactory interface {
	// SelectTag picks the package manager tag for a release.
	SelectTag(cfg domain.ManagerConfig, release domain.Release) (string, error)
	// Provision clones the package manager from url into sroot at tag unless it is already there.
	Provision(ctx context.Context, sroot domain.SROOT, url string, tag string) error
	// Open returns a handle for the instance inside sroot.
	Open(sroot domain.SROOT, tag string, bctx *domain.BuildContext) PackageManager
}

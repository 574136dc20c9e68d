// Package compiler builds and registers the toolchain a release is compiled with.
package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one compiler bootstrap.
type Request struct {
	// ListPath is the optional compiler package list of the release.
	ListPath string
	// Families are the package-name substrings that identify a compiler.
	Families []string
	// Arch is the triple the compiler is built for.
	Arch domain.Arch
	Jobs int
}

// Bootstrapper installs the compiler named by a release's compiler list and registers it
// with the package manager.
type Bootstrapper struct {
	fs       ports.Filesystem
	packages ports.PackageListLoader
	logger   ports.Logger
}

// NewBootstrapper creates a Bootstrapper.
func NewBootstrapper(fs ports.Filesystem, packages ports.PackageListLoader, logger ports.Logger) *Bootstrapper {
	return &Bootstrapper{fs: fs, packages: packages, logger: logger}
}

// Bootstrap registers the host compilers, then installs and registers the release compiler.
// It returns the zero handle when the release has no compiler list.
func (b *Bootstrapper) Bootstrap(
	ctx context.Context,
	pm ports.PackageManager,
	mirror ports.Mirror,
	req Request,
) (domain.CompilerHandle, error) {
	if err := pm.FindCompilers(ctx); err != nil {
		return domain.CompilerHandle{}, zerr.Wrap(err, "failed to register system compilers")
	}

	if !b.fs.IsFile(req.ListPath) {
		b.logger.Info(fmt.Sprintf("skipping compiler install, as %s is missing", req.ListPath))
		return domain.CompilerHandle{}, nil
	}

	list, err := b.packages.Load(req.ListPath)
	if err != nil {
		return domain.CompilerHandle{}, err
	}

	handle, ok := Identify(list, req.Families)
	if !ok {
		return domain.CompilerHandle{}, zerr.With(domain.ErrCompilerNotFound, "path", req.ListPath)
	}
	handle.Arch = req.Arch

	installed, err := b.isInstalled(ctx, pm, handle)
	if err != nil {
		return domain.CompilerHandle{}, err
	}
	if installed {
		b.logger.Info(fmt.Sprintf("compiler %s already installed", handle.Name))
	} else if err := b.install(ctx, pm, mirror, list, req); err != nil {
		return domain.CompilerHandle{}, err
	}

	if err := b.register(ctx, pm, handle); err != nil {
		return domain.CompilerHandle{}, err
	}
	return handle, nil
}

// Identify returns the compiler package of list: the last entry whose name contains one of
// families. Arch is left unset.
func Identify(list *domain.PackageList, families []string) (domain.CompilerHandle, bool) {
	var handle domain.CompilerHandle
	for name, spec := range list.All() {
		for _, family := range families {
			if strings.Contains(name, family) {
				handle = domain.CompilerHandle{Name: name, Spec: spec.Head()}
				break
			}
		}
	}
	return handle, !handle.IsZero()
}

func (b *Bootstrapper) isInstalled(ctx context.Context, pm ports.PackageManager, handle domain.CompilerHandle) (bool, error) {
	records, err := pm.FindInstalled(ctx)
	if err != nil {
		return false, zerr.Wrap(err, "failed to query installed compilers")
	}
	for _, rec := range records {
		if rec.Name == handle.Name && rec.Arch == handle.Arch {
			return true, nil
		}
	}
	return false, nil
}

// install builds every entry of the compiler list. Compilers are leaves, so no pins are needed.
func (b *Bootstrapper) install(
	ctx context.Context,
	pm ports.PackageManager,
	mirror ports.Mirror,
	list *domain.PackageList,
	req Request,
) error {
	for name, spec := range list.All() {
		b.logger.Info("installing " + name)
		mirror.Fetch(ctx, spec)
		err := pm.Install(ctx, domain.InstallRequest{
			Spec:        spec,
			Constraints: []string{"target=" + req.Arch.Target},
			Jobs:        req.Jobs,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to install compiler"), "package", name)
		}
	}
	return nil
}

// register adds the compiler to the site scope unless it is already listed for this OS.
func (b *Bootstrapper) register(ctx context.Context, pm ports.PackageManager, handle domain.CompilerHandle) error {
	registered, err := pm.Compilers(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to list compilers")
	}
	for _, c := range registered {
		if c.Spec == handle.Spec && c.OS == handle.Arch.OS {
			return nil
		}
	}

	spec := handle.WithArch()
	b.logger.Info("adding compiler " + spec)

	prefix, err := pm.Location(ctx, spec)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to locate compiler"), "compiler", spec)
	}
	if prefix == "" || !b.fs.Exists(prefix) {
		return zerr.With(domain.ErrCompilerLocation, "compiler", spec)
	}
	if err := pm.AddCompiler(ctx, prefix); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to add compiler"), "compiler", spec)
	}
	return nil
}

package driver

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	"github.com/WIPACrepo/cvmfs/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Resolve runs the dependency resolver for one package against an existing SROOT without
// installing anything.
func (d *Driver) Resolve(ctx context.Context, cfg domain.BuildConfig, release domain.Release, name string) (resolver.Result, error) {
	bctx := cfg.BuildContext()
	sroot, err := d.locate(ctx, cfg.ReleaseBase(release), release, bctx)
	if err != nil {
		return resolver.Result{}, err
	}
	if !d.fs.Exists(sroot.ManagerBin()) {
		return resolver.Result{}, zerr.With(zerr.Wrap(domain.ErrSROOTNotFound, "package manager not provisioned"), "path", sroot.ManagerRoot())
	}

	list, err := d.packages.Load(cfg.PackageListPath(release))
	if err != nil {
		return resolver.Result{}, err
	}
	spec, ok := list.Get(name)
	if !ok {
		return resolver.Result{}, zerr.With(domain.ErrPackageNotDesired, "package", name)
	}

	var handle domain.CompilerHandle
	if path := cfg.CompilerListPath(release); d.fs.IsFile(path) {
		compilers, err := d.packages.Load(path)
		if err != nil {
			return resolver.Result{}, err
		}
		var found bool
		if handle, found = compiler.Identify(compilers, cfg.CompilerFamilies); !found {
			return resolver.Result{}, zerr.With(domain.ErrCompilerNotFound, "path", path)
		}
	}

	tag, err := d.managers.SelectTag(cfg.Manager, release)
	if err != nil {
		return resolver.Result{}, err
	}
	pm := d.managers.Open(sroot, tag, bctx)

	host, err := pm.Arch(ctx)
	if err != nil {
		return resolver.Result{}, err
	}
	installed, err := pm.ListInstalled(ctx, handle.Spec)
	if err != nil {
		return resolver.Result{}, err
	}

	machine := resolver.NewMachine(pm, list, installed, constraints(handle, host.WithTarget(cfg.Target))...)
	return machine.Resolve(ctx, resolver.NewState(spec))
}

package driver

import (
	"context"
	"fmt"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// install loads the release's package list and installs it with the configured strategy.
func (d *Driver) install(ctx context.Context, s *session) error {
	list, err := d.packages.Load(s.cfg.PackageListPath(s.release))
	if err != nil {
		return err
	}
	s.packages = list

	switch strategy(s.cfg) {
	case domain.StrategyResolve:
		return d.installResolved(ctx, s)
	case domain.StrategyEnvironment:
		return d.installEnvironment(ctx, s)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown install strategy"), "strategy", s.cfg.Manager.Strategy)
	}
}

func (d *Driver) probe(ctx context.Context, s *session) (*domain.InstalledIndex, error) {
	return s.pm.ListInstalled(ctx, s.compiler.Spec)
}

// uninstall takes an installed package out of the view, then out of the manager.
func (d *Driver) uninstall(ctx context.Context, s *session, pkg domain.InstalledPackage) error {
	d.logger.Info(fmt.Sprintf("%s tracks develop, reinstalling", pkg.Name))
	if err := d.views.Remove(ctx, s.pm, s.sroot, pkg.Name); err != nil {
		return err
	}
	if err := s.pm.Uninstall(ctx, pkg.Identifier); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to uninstall"), "package", pkg.Identifier)
	}
	s.report.Rebuilt = append(s.report.Rebuilt, pkg.Name)
	return nil
}

// recordInstalled copies the identifiers of the release's packages into the report.
func recordInstalled(s *session, installed *domain.InstalledIndex) {
	for _, name := range s.packages.Names() {
		if pkg, ok := installed.Lookup(name); ok {
			s.report.Installed[name] = pkg.Identifier
		}
	}
}

// installResolved installs package by package. Every package is resolved first and the
// release packages it depends on are installed ahead of it.
func (d *Driver) installResolved(ctx context.Context, s *session) error {
	installed, err := d.probe(ctx, s)
	if err != nil {
		return err
	}
	in := &installer{
		d:         d,
		s:         s,
		installed: installed,
		done:      make(map[string]bool, s.packages.Len()),
		active:    make(map[string]bool),
	}
	for _, name := range s.packages.Names() {
		if err := in.ensure(ctx, name); err != nil {
			return err
		}
	}
	recordInstalled(s, in.installed)
	return nil
}

type installer struct {
	d         *Driver
	s         *session
	installed *domain.InstalledIndex
	// done holds packages handled during this run, active those on the current install path.
	done   map[string]bool
	active map[string]bool
}

func (in *installer) ensure(ctx context.Context, name string) error {
	if in.done[name] || in.active[name] {
		return nil
	}
	spec, ok := in.s.packages.Get(name)
	if !ok {
		return zerr.With(domain.ErrPackageNotDesired, "package", name)
	}

	in.active[name] = true
	defer delete(in.active, name)

	ctx, v := in.d.telemetry.Record(ctx, domain.StepInstall.Of(name))
	err := in.installOne(ctx, v, spec)
	v.Complete(err)
	in.done[name] = true
	return err
}

func (in *installer) installOne(ctx context.Context, v ports.Vertex, spec domain.PackageSpec) error {
	s := in.s
	if pkg, ok := in.installed.Lookup(spec.Name); ok {
		if !spec.IsDevelop() {
			in.d.logger.Info(spec.Name + " already installed")
			s.report.Skipped = append(s.report.Skipped, spec.Name)
			v.Cached()
			return nil
		}
		if err := in.d.uninstall(ctx, s, pkg); err != nil {
			return err
		}
		if err := in.refresh(ctx); err != nil {
			return err
		}
	}

	s.mirror.Fetch(ctx, spec)

	c := constraints(s.compiler, s.arch)
	machine := resolver.NewMachine(s.pm, s.packages, in.installed, c...)
	res, err := machine.Resolve(ctx, resolver.NewState(spec))
	if err != nil {
		return err
	}
	v.Log(domain.LogLevelInfo, fmt.Sprintf("%s resolved in %d iterations: %v", spec.Name, res.Iterations, res.Dependencies.Sorted()))

	for _, dep := range res.Dependencies.Sorted() {
		if s.packages.Has(dep) {
			if err := in.ensure(ctx, dep); err != nil {
				return err
			}
		}
	}

	in.d.logger.Info("installing " + spec.Name)
	err = s.pm.Install(ctx, domain.InstallRequest{
		Spec:        spec,
		Constraints: c,
		Pins:        res.Pins,
		Jobs:        s.cfg.Jobs,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install"), "package", spec.Name)
	}
	if len(res.Pins) > 0 {
		if s.report.Pins == nil {
			s.report.Pins = make(map[string][]string)
		}
		s.report.Pins[spec.Name] = res.Pins
	}
	return in.refresh(ctx)
}

func (in *installer) refresh(ctx context.Context) error {
	installed, err := in.d.probe(ctx, in.s)
	if err != nil {
		return err
	}
	in.installed = installed
	return nil
}

// installEnvironment installs the whole release through one package manager environment.
// Develop packages are uninstalled first so the environment rebuilds them.
func (d *Driver) installEnvironment(ctx context.Context, s *session) error {
	installed, err := d.probe(ctx, s)
	if err != nil {
		return err
	}
	for name, spec := range s.packages.All() {
		pkg, ok := installed.Lookup(name)
		switch {
		case !ok:
			s.mirror.Fetch(ctx, spec)
		case spec.IsDevelop():
			if err := d.uninstall(ctx, s, pkg); err != nil {
				return err
			}
		default:
			s.report.Skipped = append(s.report.Skipped, name)
		}
	}

	manifest := domain.NewEnvironmentManifest(s.sroot.EnvironmentName(), s.packages, s.arch, s.compiler)
	if err := s.pm.InstallEnvironment(ctx, manifest, s.sroot.EnvironmentManifestPath(), s.cfg.Jobs); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to install environment"), "environment", manifest.Name)
	}

	installed, err = d.probe(ctx, s)
	if err != nil {
		return err
	}
	recordInstalled(s, installed)
	return nil
}

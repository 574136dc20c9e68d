// Package driver orchestrates a release build: it prepares the SROOT, provisions the
// package manager, bootstraps the compiler, installs the release's packages and assembles
// the view.
//
// A build is strictly sequential. Each step runs inside its own telemetry vertex and any
// failing external command aborts the build; the package manager's caches are cleaned
// whatever the outcome.
package driver

import (
	"context"
	"errors"
	"time"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	"github.com/WIPACrepo/cvmfs/internal/engine/view"
	"go.trai.ch/zerr"
)

// Driver builds releases.
type Driver struct {
	runner    ports.CommandRunner
	fs        ports.Filesystem
	managers  ports.PackageManagerFactory
	mirrors   ports.MirrorFactory
	packages  ports.PackageListLoader
	reports   ports.ReportStore
	compilers *compiler.Bootstrapper
	views     *view.Assembler
	telemetry ports.Telemetry
	logger    ports.Logger
	now       func() time.Time
}

// New creates a Driver.
func New(
	runner ports.CommandRunner,
	fs ports.Filesystem,
	managers ports.PackageManagerFactory,
	mirrors ports.MirrorFactory,
	packages ports.PackageListLoader,
	reports ports.ReportStore,
	compilers *compiler.Bootstrapper,
	views *view.Assembler,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Driver {
	return &Driver{
		runner:    runner,
		fs:        fs,
		managers:  managers,
		mirrors:   mirrors,
		packages:  packages,
		reports:   reports,
		compilers: compilers,
		views:     views,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// session is the state shared by the steps of one build.
type session struct {
	cfg          domain.BuildConfig
	release      domain.Release
	bctx         *domain.BuildContext
	sroot        domain.SROOT
	tag          string
	pm           ports.PackageManager
	mirror       ports.Mirror
	arch         domain.Arch
	compilerArch domain.Arch
	compiler     domain.CompilerHandle
	packages     *domain.PackageList
	report       domain.BuildReport
}

// Build builds release and stores its report.
func (d *Driver) Build(ctx context.Context, cfg domain.BuildConfig, release domain.Release) (report domain.BuildReport, err error) {
	d.logger.Info("building version " + release.Name)
	s := &session{cfg: cfg, release: release, bctx: cfg.BuildContext()}

	if err := d.step(ctx, domain.StepSROOT, func(ctx context.Context) error { return d.setupSROOT(ctx, s) }); err != nil {
		return domain.BuildReport{}, err
	}
	if err := d.step(ctx, domain.StepManager, func(ctx context.Context) error { return d.setupManager(ctx, s) }); err != nil {
		return domain.BuildReport{}, err
	}

	// Caches are cleaned even when the build was interrupted.
	defer func() {
		if cerr := d.step(context.WithoutCancel(ctx), domain.StepClean, s.pm.Clean); cerr != nil {
			err = errors.Join(err, zerr.Wrap(cerr, "failed to clean package manager caches"))
		}
	}()

	steps := []struct {
		name domain.Step
		run  func(context.Context, *session) error
	}{
		{domain.StepSources, d.registerSources},
		{domain.StepCompiler, d.bootstrapCompiler},
		{domain.StepInstall, d.install},
		{domain.StepView, d.assembleView},
		{domain.StepPip, d.installRequirements},
		{domain.StepData, d.linkData},
	}
	for _, st := range steps {
		if err := d.step(ctx, st.name, func(ctx context.Context) error { return st.run(ctx, s) }); err != nil {
			return domain.BuildReport{}, zerr.With(err, "release", release.Name)
		}
	}

	s.report.FinishedAt = d.now().UTC()
	if err := d.reports.Put(s.sroot.Base, s.report); err != nil {
		return domain.BuildReport{}, err
	}
	d.logger.Info("finished version " + release.Name)
	return s.report, nil
}

// step runs fn inside a telemetry vertex.
func (d *Driver) step(ctx context.Context, name domain.Step, fn func(context.Context) error) error {
	ctx, v := d.telemetry.Record(ctx, string(name))
	err := fn(ctx)
	v.Complete(err)
	return err
}

// constraints are applied to every explain and install of a release package.
func constraints(c domain.CompilerHandle, arch domain.Arch) []string {
	var out []string
	if !c.IsZero() {
		out = append(out, c.Constraint())
	}
	return append(out, arch.Constraint())
}

// Package app ties the configuration to the build engines behind the sroot commands.
package app

import (
	"context"
	"fmt"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/metaproject"
	"github.com/WIPACrepo/cvmfs/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// ReleaseDriver builds and inspects release SROOTs.
type ReleaseDriver interface {
	Build(ctx context.Context, cfg domain.BuildConfig, release domain.Release) (domain.BuildReport, error)
	Locate(ctx context.Context, cfg domain.BuildConfig, release domain.Release) (domain.SROOT, error)
	Prefetch(ctx context.Context, cfg domain.BuildConfig, release domain.Release) error
	Resolve(ctx context.Context, cfg domain.BuildConfig, release domain.Release, name string) (resolver.Result, error)
}

// MetaprojectRunner checks out and builds metaprojects.
type MetaprojectRunner interface {
	Run(ctx context.Context, cfg domain.BuildConfig, req metaproject.Request) error
}

// Options carries the command line overrides of a run.
type Options struct {
	ConfigPath     string
	ConfigRequired bool
	Src            string
	Dest           string
	Mirror         string
	ManagerTag     string
	Target         string
	CompilerTarget string
	Jobs           int
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	driver       ReleaseDriver
	metaprojects MetaprojectRunner
	reports      ports.ReportStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	driver ReleaseDriver,
	metaprojects MetaprojectRunner,
	reports ports.ReportStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		driver:       driver,
		metaprojects: metaprojects,
		reports:      reports,
		logger:       logger,
	}
}

// Config loads the configuration file and applies the overrides in opts.
func (a *App) Config(opts Options) (domain.BuildConfig, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return cfg, zerr.Wrap(err, "failed to load configuration")
	}
	setString(&cfg.Src, opts.Src)
	setString(&cfg.Dest, opts.Dest)
	setString(&cfg.Mirror, opts.Mirror)
	setString(&cfg.Manager.Tag, opts.ManagerTag)
	setString(&cfg.Target, opts.Target)
	setString(&cfg.CompilerTarget, opts.CompilerTarget)
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}

	if cfg.Dest == "" {
		return cfg, zerr.Wrap(domain.ErrInvalidConfig, "dest must be set")
	}
	if cfg.Recipes == "" {
		cfg.Recipes = cfg.Src
	}
	return cfg, nil
}

// Build builds every release in order. Metaproject releases are built against their
// base release's SROOT.
func (a *App) Build(ctx context.Context, opts Options, releases []string) error {
	cfg, err := a.Config(opts)
	if err != nil {
		return err
	}
	for _, name := range releases {
		release, err := domain.ParseRelease(name)
		if err != nil {
			return err
		}
		if release.IsMetaproject() {
			if err := a.meta(ctx, cfg, release, false); err != nil {
				return err
			}
			continue
		}

		report, err := a.driver.Build(ctx, cfg, release)
		if err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("built %s in %s (%d installed, %d rebuilt)",
			release, report.SROOT, len(report.Installed), len(report.Rebuilt)))
	}
	return nil
}

// Meta builds, or with checkout only refreshes, the metaprojects of each release.
func (a *App) Meta(ctx context.Context, opts Options, releases []string, checkout bool) error {
	cfg, err := a.Config(opts)
	if err != nil {
		return err
	}
	for _, name := range releases {
		release, err := domain.ParseRelease(name)
		if err != nil {
			return err
		}
		if !release.IsMetaproject() {
			return zerr.With(zerr.Wrap(domain.ErrInvalidRelease, "not a metaproject release"), "release", name)
		}
		if err := a.meta(ctx, cfg, release, checkout); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) meta(ctx context.Context, cfg domain.BuildConfig, release domain.Release, checkout bool) error {
	sroot, err := a.driver.Locate(ctx, cfg, release.Base())
	if err != nil {
		return zerr.With(err, "release", release.String())
	}
	return a.metaprojects.Run(ctx, cfg, metaproject.Request{
		List:     cfg.PackageListPath(release),
		SROOT:    sroot,
		Checkout: checkout,
	})
}

// Mirror prefetches the sources of each release into the configured mirror.
func (a *App) Mirror(ctx context.Context, opts Options, releases []string) error {
	cfg, err := a.Config(opts)
	if err != nil {
		return err
	}
	for _, name := range releases {
		release, err := domain.ParseRelease(name)
		if err != nil {
			return err
		}
		if err := a.driver.Prefetch(ctx, cfg, release); err != nil {
			return err
		}
	}
	return nil
}

// Resolve computes the dependency pins of one package of a built release.
func (a *App) Resolve(ctx context.Context, opts Options, releaseName, pkg string) (resolver.Result, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return resolver.Result{}, err
	}
	release, err := domain.ParseRelease(releaseName)
	if err != nil {
		return resolver.Result{}, err
	}
	return a.driver.Resolve(ctx, cfg, release, pkg)
}

// Report returns the stored build reports of a release, one per architecture SROOT.
func (a *App) Report(opts Options, releaseName string) ([]domain.BuildReport, error) {
	cfg, err := a.Config(opts)
	if err != nil {
		return nil, err
	}
	release, err := domain.ParseRelease(releaseName)
	if err != nil {
		return nil, err
	}
	reports, err := a.reports.List(cfg.ReleaseBase(release))
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, zerr.With(domain.ErrReportNotFound, "release", release.String())
	}
	return reports, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

type jsonLogger interface {
	SetJSON(enable bool)
}

// SetJSONLogs switches the logger to JSON records if it supports them.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(enable)
	}
}

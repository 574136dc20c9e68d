package driver

import (
	"context"
	"path/filepath"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// mirrorToolDir holds the package manager checkout used to populate mirrors.
const mirrorToolDir = ".mirror"

// Prefetch populates the mirror with the sources of every package and compiler of a
// release. Downloads run concurrently; a failed download is logged and skipped.
func (d *Driver) Prefetch(ctx context.Context, cfg domain.BuildConfig, release domain.Release) error {
	if !filepath.IsAbs(cfg.Mirror) {
		d.logger.Info("no local mirror configured, nothing to prefetch")
		return nil
	}

	tool := domain.SROOT{Release: release, Base: cfg.Dest, Root: filepath.Join(cfg.Dest, mirrorToolDir)}
	if err := d.fs.MkdirAll(tool.Root); err != nil {
		return err
	}
	tag, err := d.managers.SelectTag(cfg.Manager, release)
	if err != nil {
		return err
	}
	if err := d.managers.Provision(ctx, tool, cfg.Manager.URL, tag); err != nil {
		return err
	}
	pm := d.managers.Open(tool, tag, cfg.BuildContext())
	mirror := d.mirrors.Open(cfg.Mirror, pm)

	specs, err := d.releaseSpecs(cfg, release)
	if err != nil {
		return err
	}

	limit := cfg.Prefetch
	if limit <= 0 {
		limit = domain.DefaultPrefetch
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mirror.Fetch(gctx, spec)
			return nil
		})
	}
	return g.Wait()
}

// releaseSpecs returns the compiler specs followed by the package specs of a release.
func (d *Driver) releaseSpecs(cfg domain.BuildConfig, release domain.Release) ([]domain.PackageSpec, error) {
	var specs []domain.PackageSpec
	if path := cfg.CompilerListPath(release); d.fs.IsFile(path) {
		compilers, err := d.packages.Load(path)
		if err != nil {
			return nil, err
		}
		specs = append(specs, compilers.Specs()...)
	}
	list, err := d.packages.Load(cfg.PackageListPath(release))
	if err != nil {
		return nil, err
	}
	return append(specs, list.Specs()...), nil
}

package spack

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// rootVariable points spack at its own checkout.
const rootVariable = "SPACK_ROOT"

var _ ports.PackageManagerFactory = (*Factory)(nil)

// Factory provisions spack checkouts and opens Managers on them.
type Factory struct {
	runner ports.CommandRunner
	fs     ports.Filesystem
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(runner ports.CommandRunner, fs ports.Filesystem, logger ports.Logger) *Factory {
	return &Factory{runner: runner, fs: fs, logger: logger}
}

// SelectTag returns the configured override, else the tag of the first rule whose
// constraint matches the release number, else the default tag.
func (f *Factory) SelectTag(cfg domain.ManagerConfig, release domain.Release) (string, error) {
	if cfg.Tag != "" {
		return cfg.Tag, nil
	}
	version, ok := release.Number()
	if ok {
		for _, rule := range cfg.Tags {
			c, err := semver.NewConstraint(rule.Constraint)
			if err != nil {
				return "", zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid release constraint"), "release", rule.Constraint)
			}
			if c.Check(version) {
				return rule.Tag, nil
			}
		}
	}
	if cfg.DefaultTag == "" {
		return domain.DefaultManagerTag, nil
	}
	return cfg.DefaultTag, nil
}

// Provision shallow-clones spack at tag into the SROOT unless a checkout is present.
func (f *Factory) Provision(ctx context.Context, sroot domain.SROOT, url string, tag string) error {
	if f.fs.Exists(sroot.ManagerBin()) {
		f.logger.Info(fmt.Sprintf("using existing spack checkout at %s", sroot.ManagerRoot()))
		return nil
	}
	err := f.runner.Run(ctx, domain.Command{
		Args: []string{"git", "clone", "--depth", "1", "--branch", tag, url, sroot.ManagerRoot()},
		Dir:  sroot.Root,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clone spack"), "tag", tag)
	}
	return nil
}

// Open returns a Manager for the checkout inside sroot. env is extended with SPACK_ROOT.
func (f *Factory) Open(sroot domain.SROOT, tag string, env *domain.BuildContext) ports.PackageManager {
	return NewManager(f.runner, f.logger, sroot, tag, env.With(rootVariable, sroot.ManagerRoot()))
}

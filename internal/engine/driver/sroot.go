package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locate asks the release's os_arch.sh for the SROOT directory name.
func (d *Driver) Locate(ctx context.Context, cfg domain.BuildConfig, release domain.Release) (domain.SROOT, error) {
	return d.locate(ctx, cfg.ReleaseBase(release), release, cfg.BuildContext())
}

func (d *Driver) locate(ctx context.Context, base string, release domain.Release, bctx *domain.BuildContext) (domain.SROOT, error) {
	script := filepath.Join(base, domain.ArchScript)
	res, err := d.runner.Output(ctx, domain.Command{Args: []string{script}, Dir: base, Env: bctx})
	if err != nil {
		return domain.SROOT{}, zerr.With(zerr.Wrap(domain.ErrSROOTNotFound, err.Error()), "path", base)
	}
	name := strings.TrimSpace(res.Stdout)
	if !res.Success() || name == "" {
		return domain.SROOT{}, zerr.With(domain.ErrSROOTNotFound, "path", base)
	}
	return domain.SROOT{Release: release, Base: base, Root: filepath.Join(base, name)}, nil
}

// setupSROOT finds or creates the SROOT. The release template is copied in unless an SROOT
// already exists under the mount; rolling releases are wiped.
func (d *Driver) setupSROOT(ctx context.Context, s *session) error {
	base := s.cfg.ReleaseBase(s.release)

	sroot, locateErr := d.locate(ctx, base, s.release, s.bctx)
	if locateErr != nil || !s.cfg.UnderMount(sroot.Root) {
		tmpl, ok := domain.FirstExisting(s.cfg.Src, s.release.Parts, domain.TemplateCandidates, d.fs.IsDir)
		if !ok {
			return zerr.With(domain.ErrTemplateNotFound, "release", s.release.Name)
		}
		d.logger.Info(fmt.Sprintf("copying template %s to %s", tmpl, base))
		if err := d.fs.CopyTree(tmpl, base); err != nil {
			return err
		}
	}
	if locateErr != nil {
		var err error
		if sroot, err = d.locate(ctx, base, s.release, s.bctx); err != nil {
			return err
		}
	}

	if s.cfg.IsRolling(s.release) && d.fs.IsDir(sroot.Root) {
		d.logger.Info(fmt.Sprintf("%s - deleting sroot %s", s.release.Name, sroot.Root))
		if err := d.fs.RemoveAll(sroot.Root); err != nil {
			return err
		}
	}
	if err := d.fs.MkdirAll(sroot.Root); err != nil {
		return err
	}

	s.sroot = sroot
	s.report = domain.BuildReport{
		Release:   s.release.Name,
		SROOT:     sroot.Name(),
		Strategy:  strategy(s.cfg),
		Installed: map[string]string{},
	}
	return nil
}

// setupManager provisions the package manager checkout and reads the host architecture.
func (d *Driver) setupManager(ctx context.Context, s *session) error {
	tag, err := d.managers.SelectTag(s.cfg.Manager, s.release)
	if err != nil {
		return err
	}
	d.logger.Info("spack tag: " + tag)
	if err := d.managers.Provision(ctx, s.sroot, s.cfg.Manager.URL, tag); err != nil {
		return err
	}

	s.tag = tag
	s.pm = d.managers.Open(s.sroot, tag, s.bctx)
	s.report.ManagerTag = tag

	host, err := s.pm.Arch(ctx)
	if err != nil {
		return err
	}
	s.arch = host.WithTarget(s.cfg.Target)
	s.compilerArch = host.WithTarget(s.cfg.EffectiveCompilerTarget())
	s.report.Arch = s.arch.String()
	return nil
}

func strategy(cfg domain.BuildConfig) string {
	if cfg.Manager.Strategy == "" {
		return domain.StrategyResolve
	}
	return cfg.Manager.Strategy
}

package driver

import (
	"context"
	"path/filepath"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/engine/view"
)

// vomsDir holds the certificate data inside the shared data directory.
const vomsDir = "voms"

func (d *Driver) assembleView(ctx context.Context, s *session) error {
	fingerprint, err := d.views.Assemble(ctx, s.pm, view.Request{
		SROOT:    s.sroot,
		Packages: s.packages,
		Compiler: s.compiler,
		Arch:     s.arch,
	})
	if err != nil {
		return err
	}
	s.report.View = fingerprint
	return nil
}

// installRequirements runs pip inside the activated SROOT with the most specific
// requirements file of the release, if there is one.
func (d *Driver) installRequirements(ctx context.Context, s *session) error {
	for _, path := range s.cfg.PipRequirementPaths(s.release, s.sroot.Name()) {
		if !d.fs.IsFile(path) {
			continue
		}
		d.logger.Info("pip install using " + filepath.Base(path))
		return d.runner.RunScript(ctx, domain.Script{
			Eval:  filepath.Join(s.sroot.Base, domain.SetupScript),
			Lines: []string{"python -m pip install -r " + domain.ShellQuote(path)},
			Dir:   s.sroot.Root,
			Env:   s.bctx,
		})
	}
	d.logger.Info("no pip install")
	return nil
}

// linkData links the certificate directories into the shared data directory. Existing
// entries are left alone.
func (d *Driver) linkData(_ context.Context, s *session) error {
	data := filepath.Join(s.cfg.DataDir(), vomsDir)
	for _, rel := range domain.DataLinks {
		link := filepath.Join(s.sroot.Root, rel)
		if err := d.fs.MkdirAll(filepath.Dir(link)); err != nil {
			return err
		}
		if d.fs.Lexists(link) {
			continue
		}
		if err := d.fs.Symlink(filepath.Join(data, rel), link); err != nil {
			return err
		}
	}
	return nil
}

// Package metaproject checks out and builds software metaprojects against an existing SROOT.
package metaproject

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one metaproject run.
type Request struct {
	// List is the metaproject list file.
	List  string
	SROOT domain.SROOT
	// Checkout only refreshes the sources under the SROOT base.
	Checkout bool
}

// Builder checks out and builds metaprojects.
type Builder struct {
	runner    ports.CommandRunner
	fs        ports.Filesystem
	packages  ports.PackageListLoader
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(
	runner ports.CommandRunner,
	fs ports.Filesystem,
	packages ports.PackageListLoader,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Builder {
	return &Builder{runner: runner, fs: fs, packages: packages, telemetry: telemetry, logger: logger}
}

// Run processes every entry of the request's list in order.
func (b *Builder) Run(ctx context.Context, cfg domain.BuildConfig, req Request) error {
	list, err := b.packages.Load(req.List)
	if err != nil {
		return err
	}
	for _, line := range list.Names() {
		entry, err := ParseEntry(line)
		if err != nil {
			return err
		}
		b.logger.Info("working on " + entry.String())

		ctx, v := b.telemetry.Record(ctx, "metaproject "+entry.String())
		cached, err := b.process(ctx, cfg, req, entry)
		if cached {
			v.Cached()
		}
		v.Complete(err)
		if err != nil {
			return zerr.With(err, "metaproject", entry.String())
		}
	}
	return nil
}

func (b *Builder) process(ctx context.Context, cfg domain.BuildConfig, req Request, e Entry) (bool, error) {
	src := ResolveSource(cfg.Meta, e)

	if req.Checkout {
		dir := filepath.Join(req.SROOT.Base, domain.MetaprojectDir, e.String())
		if src.Trunk || !b.fs.Exists(dir) {
			if err := b.download(ctx, cfg, src, dir); err != nil {
				return false, err
			}
		}
		b.logger.Info("checkout only, so skipping build of " + e.String())
		return true, nil
	}

	installDir := req.SROOT.MetaprojectInstallDir(e.String())
	if !src.Trunk && b.fs.Exists(installDir) {
		b.logger.Info(fmt.Sprintf("skipping build of %s - already built", e))
		return true, nil
	}
	return false, b.build(ctx, cfg, req.SROOT, src, installDir)
}

// build compiles src in scratch directories and installs it into installDir.
func (b *Builder) build(ctx context.Context, cfg domain.BuildConfig, sroot domain.SROOT, src Source, installDir string) (err error) {
	work := cfg.MetaprojectWorkDir()
	srcDir, err := b.fs.TempDir(work, "src-")
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, b.fs.RemoveAll(srcDir)) }()
	buildDir, err := b.fs.TempDir(work, "build-")
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, b.fs.RemoveAll(buildDir)) }()

	if err := b.download(ctx, cfg, src, srcDir); err != nil {
		return err
	}

	env := cfg.BuildContext()
	inSROOT := func(line string) error {
		return b.runner.RunScript(ctx, domain.Script{
			Eval:  filepath.Join(sroot.Base, domain.SetupScript),
			Lines: []string{line},
			Dir:   buildDir,
			Env:   env,
		})
	}

	configure := "cmake -DCMAKE_BUILD_TYPE=Release -DINSTALL_TOOL_LIBS=OFF " +
		domain.ShellQuote("-DCMAKE_INSTALL_PREFIX="+installDir) + " " + domain.ShellQuote(srcDir)
	if err := inSROOT(configure); err != nil {
		return err
	}
	if err := inSROOT("make -j " + strconv.Itoa(jobs(cfg))); err != nil {
		return err
	}
	if src.Trunk && b.fs.Exists(installDir) {
		if err := b.fs.RemoveAll(installDir); err != nil {
			return err
		}
	}
	return inSROOT("make install")
}

// download replaces dest with a fresh checkout of src.
func (b *Builder) download(ctx context.Context, cfg domain.BuildConfig, src Source, dest string) error {
	b.logger.Info(fmt.Sprintf("downloading %s to %s", src.URL, dest))
	if b.fs.Exists(dest) {
		if err := b.fs.RemoveAll(dest); err != nil {
			return err
		}
	}

	var err error
	if src.Git {
		err = b.runner.Run(ctx, domain.Command{Args: []string{"git", "clone", src.URL, dest}})
		if err == nil {
			err = b.runner.Run(ctx, domain.Command{Args: []string{"git", "checkout", src.Ref}, Dir: dest})
		}
	} else {
		err = b.runner.RunScript(ctx, domain.Script{Lines: []string{svnCheckout(cfg.Meta, src.URL, dest)}})
	}
	if err != nil {
		return err
	}

	if !b.fs.Exists(dest) {
		return zerr.With(domain.ErrDownloadFailed, "url", src.URL)
	}
	return nil
}

// svnCheckout renders the svn command line. The password is expanded from the
// environment by the shell so it never appears in logs.
func svnCheckout(cfg domain.MetaConfig, url, dest string) string {
	line := "svn co " + domain.ShellQuote(url) + " " + domain.ShellQuote(dest)
	if cfg.SVNUser != "" {
		line += " --username " + domain.ShellQuote(cfg.SVNUser)
		if cfg.SVNPasswordEnv != "" {
			line += ` --password "$` + cfg.SVNPasswordEnv + `"`
		}
	}
	return line + " --no-auth-cache --non-interactive"
}

func jobs(cfg domain.BuildConfig) int {
	if cfg.Jobs <= 0 {
		return domain.DefaultJobs
	}
	return cfg.Jobs
}

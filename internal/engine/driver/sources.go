package driver

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// Mirror registration names.
const (
	localMirrorName  = "local_filesystem"
	remoteMirrorName = "remote_server"
	fileScheme       = "file://"
)

// staleRepos are registrations a fresh recipe repository replaces.
var staleRepos = []string{domain.FallbackRepoDir, domain.RepoName}

// registerSources installs the release's recipe repository and registers the mirror.
func (d *Driver) registerSources(ctx context.Context, s *session) error {
	if err := d.registerRepo(ctx, s); err != nil {
		return err
	}
	if err := registerMirror(ctx, s.pm, s.cfg.Mirror); err != nil {
		return err
	}
	s.mirror = d.mirrors.Open(s.cfg.Mirror, s.pm)
	return nil
}

func (d *Driver) registerRepo(ctx context.Context, s *session) error {
	src, ok := domain.FirstExisting(s.cfg.Recipes, s.release.Parts, domain.RepoCandidates, d.fs.IsDir)
	if !ok {
		return zerr.With(domain.ErrRepoNotFound, "release", s.release.Name)
	}

	dst := s.sroot.RepoDir()
	if d.fs.Exists(dst) {
		if err := d.fs.RemoveAll(dst); err != nil {
			return err
		}
	}
	if err := d.fs.CopyTree(src, dst); err != nil {
		return err
	}

	registered, err := s.pm.Repos(ctx)
	if err != nil {
		return err
	}
	for _, name := range staleRepos {
		if slices.Contains(registered, name) {
			if err := s.pm.RemoveRepo(ctx, name); err != nil {
				return err
			}
		}
	}
	return s.pm.AddRepo(ctx, dst)
}

// registerMirror adds location to the manager's mirrors unless it is already listed.
// Absolute paths are registered as local file mirrors.
func registerMirror(ctx context.Context, sources ports.SourceRegistry, location string) error {
	if location == "" {
		return nil
	}
	listed, err := sources.Mirrors(ctx)
	if err != nil {
		return err
	}

	name, url := remoteMirrorName, location
	if filepath.IsAbs(location) {
		name, url = localMirrorName, fileScheme+location
	}
	if strings.Contains(listed, url) {
		return nil
	}
	return sources.AddMirror(ctx, name, url)
}

// bootstrapCompiler runs the compiler bootstrap for the release.
func (d *Driver) bootstrapCompiler(ctx context.Context, s *session) error {
	handle, err := d.compilers.Bootstrap(ctx, s.pm, s.mirror, compilerRequest(s))
	if err != nil {
		return err
	}
	s.compiler = handle
	s.report.Compiler = handle.Spec
	return nil
}

func compilerRequest(s *session) compiler.Request {
	return compiler.Request{
		ListPath: s.cfg.CompilerListPath(s.release),
		Families: s.cfg.CompilerFamilies,
		Arch:     s.compilerArch,
		Jobs:     s.cfg.Jobs,
	}
}

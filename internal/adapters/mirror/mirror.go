// Package mirror keeps a local source mirror populated ahead of installs.
package mirror

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
)

// archiveExtensions are the tarball layouts spack writes into a mirror.
var archiveExtensions = []string{".tar.gz", ".tar.bz2", ".tar.xz"}

var (
	_ ports.Mirror        = (*FileMirror)(nil)
	_ ports.Mirror        = noopMirror{}
	_ ports.MirrorFactory = (*Factory)(nil)
)

// FileMirror is a mirror on the local filesystem.
type FileMirror struct {
	dir     string
	sources ports.SourceRegistry
	fs      ports.Filesystem
	logger  ports.Logger
}

// Has reports whether an archive for spec is already present. Archives are filed under
// the package name of the spec's head, without variants.
func (m *FileMirror) Has(spec domain.PackageSpec) bool {
	head := spec.Head()
	name, _, _ := strings.Cut(head, domain.VersionSeparator)
	base := strings.ReplaceAll(head, domain.VersionSeparator, "-")
	for _, ext := range archiveExtensions {
		if m.fs.Exists(filepath.Join(m.dir, name, base+ext)) {
			return true
		}
	}
	return false
}

// Fetch downloads spec's sources into the mirror. Failures are logged, not returned.
func (m *FileMirror) Fetch(ctx context.Context, spec domain.PackageSpec) {
	if m.Has(spec) {
		m.logger.Info(spec.Head() + " already in mirror")
		return
	}
	m.logger.Info("attempting to add " + spec.Head() + " to mirror")
	if err := m.sources.CreateMirror(ctx, m.dir, spec.Head()); err != nil {
		m.logger.Warn(fmt.Sprintf("failed to add %s to mirror: %v", spec.Head(), err))
	}
}

type noopMirror struct{}

func (noopMirror) Has(domain.PackageSpec) bool { return false }

func (noopMirror) Fetch(context.Context, domain.PackageSpec) {}

// Factory opens mirrors.
type Factory struct {
	fs     ports.Filesystem
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(fs ports.Filesystem, logger ports.Logger) *Factory {
	return &Factory{fs: fs, logger: logger}
}

// Open returns a FileMirror for an absolute local path. Remote or empty locations
// cannot be populated from here and get a mirror that does nothing.
func (f *Factory) Open(location string, sources ports.SourceRegistry) ports.Mirror {
	if !filepath.IsAbs(location) {
		return noopMirror{}
	}
	return &FileMirror{dir: location, sources: sources, fs: f.fs, logger: f.logger}
}

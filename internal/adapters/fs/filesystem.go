package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

// dotEntries matches the hidden files and directories left out of template copies.
const dotEntries = ".*"

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on the local disk.
type Filesystem struct {
	walker *Walker
}

// NewFilesystem creates a new Filesystem.
func NewFilesystem(walker *Walker) *Filesystem {
	return &Filesystem{walker: walker}
}

// Exists reports whether path exists, following symlinks.
func (f *Filesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Lexists reports whether path exists without following a final symlink.
func (f *Filesystem) Lexists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir reports whether path is a directory.
func (f *Filesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path is a regular file.
func (f *Filesystem) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// MkdirAll creates path and its parents.
func (f *Filesystem) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// RemoveAll removes path and everything below it.
func (f *Filesystem) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove"), "path", path)
	}
	return nil
}

// CopyTree copies src into dst. Dot entries are skipped, symlinks are recreated
// as symlinks and existing files are overwritten.
func (f *Filesystem) CopyTree(src, dst string) error {
	if !f.IsDir(src) {
		return zerr.With(zerr.Wrap(iofs.ErrNotExist, "copy source is not a directory"), "path", src)
	}
	if err := f.MkdirAll(dst); err != nil {
		return err
	}

	for rel, d := range f.walker.Walk(src, []string{dotEntries}) {
		from := filepath.Join(src, rel)
		to := filepath.Join(dst, rel)

		var err error
		switch {
		case d.Type()&os.ModeSymlink != 0:
			err = copyLink(from, to)
		case d.IsDir():
			err = f.MkdirAll(to)
		default:
			err = copyFile(from, to)
		}
		if err != nil {
			return zerr.With(err, "src", src)
		}
	}
	return nil
}

// Symlink creates link pointing at target.
func (f *Filesystem) Symlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to create symlink"), "link", link)
		return zerr.With(err, "target", target)
	}
	return nil
}

// TempDir creates a new temporary directory inside parent.
func (f *Filesystem) TempDir(parent, pattern string) (string, error) {
	if err := f.MkdirAll(parent); err != nil {
		return "", err
	}
	dir, err := os.MkdirTemp(parent, pattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create temporary directory"), "path", parent)
	}
	return dir, nil
}

func copyLink(from, to string) error {
	target, err := os.Readlink(from)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read link"), "path", from)
	}
	if err := os.Remove(to); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to replace link"), "path", to)
	}
	if err := os.Symlink(target, to); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create symlink"), "path", to)
	}
	return nil
}

func copyFile(from, to string) error {
	info, err := os.Stat(from)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", from)
	}

	in, err := os.Open(from) //nolint:gosec // Path comes from the template tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", from)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	//nolint:gosec // Destination lies inside the SROOT being built
	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", to)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", to)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", to)
	}
	// OpenFile leaves the mode of an existing file alone.
	if err := os.Chmod(to, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set mode"), "path", to)
	}
	return nil
}

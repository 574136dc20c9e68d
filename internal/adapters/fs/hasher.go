package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.ViewHasher = (*Hasher)(nil)

// Hasher fingerprints view trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// Fingerprint hashes every entry under dir: its relative path, its kind, and the link
// target for symlinks or the content hash for regular files. Entries are visited in
// lexical order, so two trees holding the same links hash equally however they were built.
func (h *Hasher) Fingerprint(dir string, ignores ...string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat view"), "path", dir)
	}

	hasher := xxhash.New()
	for rel, d := range h.walker.Walk(dir, ignores) {
		path := filepath.Join(dir, rel)
		_, _ = hasher.WriteString(rel)
		_, _ = hasher.Write([]byte{0})

		switch {
		case d.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return "", zerr.With(zerr.Wrap(err, "failed to read link"), "path", path)
			}
			_, _ = hasher.WriteString("l -> " + target)
		case d.IsDir():
			_, _ = hasher.WriteString("d")
		default:
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return "", err
			}
			_, _ = hasher.WriteString("f ")
			if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
				return "", zerr.Wrap(err, "failed to write hash to digest")
			}
		}
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

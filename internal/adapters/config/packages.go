package config

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageListLoader = (*PackageListLoader)(nil)

// PackageListLoader reads one-spec-per-line package-list files.
type PackageListLoader struct{}

// NewPackageListLoader creates a new PackageListLoader.
func NewPackageListLoader() *PackageListLoader {
	return &PackageListLoader{}
}

// Load reads the package list at path.
func (l *PackageListLoader) Load(path string) (*domain.PackageList, error) {
	//nolint:gosec // Path is built from the configured recipe directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingPackageList, err.Error()), "path", path)
	}
	list, err := ParsePackageList(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return list, nil
}

// ParsePackageList parses package-list content. Blank lines and comments are
// skipped; a repeated name replaces the earlier spec.
func ParsePackageList(data []byte) (*domain.PackageList, error) {
	list := domain.NewPackageList()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, domain.CommentMarker) {
			continue
		}
		list.Set(domain.ParsePackageSpec(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read package list")
	}
	return list, nil
}

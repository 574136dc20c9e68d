// Package cas stores build reports alongside the SROOTs they describe.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a flat JSON file in each release base.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

func reportPath(base string) string {
	return filepath.Join(filepath.Clean(base), domain.ReportFile)
}

func (s *Store) load(path string) (map[string]domain.BuildReport, error) {
	reports := make(map[string]domain.BuildReport)

	//nolint:gosec // Path is derived from the configured destination
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return reports, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build report"), "path", path)
	}

	if len(data) == 0 {
		return reports, nil
	}

	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal build report"), "path", path)
	}
	return reports, nil
}

func (s *Store) save(path string, reports map[string]domain.BuildReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build report")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build report"), "path", path)
	}

	//nolint:gosec // Reports are meant to be world readable on the repository
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build report"), "path", path)
	}
	return nil
}

// Get retrieves the report of the named SROOT under base.
func (s *Store) Get(base string, name string) (*domain.BuildReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load(reportPath(base))
	if err != nil {
		return nil, err
	}
	report, ok := reports[name]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// List returns every report under base, ordered by SROOT name.
func (s *Store) List(base string) ([]domain.BuildReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := s.load(reportPath(base))
	if err != nil {
		return nil, err
	}
	out := make([]domain.BuildReport, 0, len(reports))
	for _, name := range slices.Sorted(maps.Keys(reports)) {
		out = append(out, reports[name])
	}
	return out, nil
}

// Put stores report under its SROOT name, keeping the reports of other SROOTs.
func (s *Store) Put(base string, report domain.BuildReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := reportPath(base)
	reports, err := s.load(path)
	if err != nil {
		return err
	}
	reports[report.SROOT] = report
	return s.save(path, reports)
}

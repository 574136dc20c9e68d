package ports

import "github.com/WIPACrepo/cvmfs/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=report_store.go -destination=mocks/mock_report_store.go -package=mocks

// ReportStore persists build reports next to an SROOT. A release base holds one
// report per architecture SROOT, keyed by the SROOT name.
type ReportStore interface {
	// Get returns the report of the named SROOT, or nil when none was written.
	Get(base string, name string) (*domain.BuildReport, error)
	// List returns every report under base ordered by SROOT name.
	List(base string) ([]domain.BuildReport, error)
	Put(base string, report domain.BuildReport) error
}

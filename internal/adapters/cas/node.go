package cas

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the report store Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReportStore, error) {
			return NewStore(), nil
		},
	})
}

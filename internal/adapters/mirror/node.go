package mirror

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the mirror factory Graft node.
const NodeID graft.ID = "adapter.mirror"

func init() {
	graft.Register(graft.Node[ports.MirrorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.MirrorFactory, error) {
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(filesystem, log), nil
		},
	})
}

package view

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the view assembler Graft node.
const NodeID graft.ID = "engine.view"

func init() {
	graft.Register(graft.Node[*Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesystemNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Assembler, error) {
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.ViewHasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(filesystem, hasher, log), nil
		},
	})
}

package compiler

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the compiler bootstrapper Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Bootstrapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FilesystemNodeID, config.PackagesNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Bootstrapper, error) {
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			packages, err := graft.Dep[ports.PackageListLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBootstrapper(filesystem, packages, log), nil
		},
	})
}

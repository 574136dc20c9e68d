package spack

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"
	"github.com/WIPACrepo/cvmfs/internal/adapters/shell"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the package manager factory Graft node.
const NodeID graft.ID = "adapter.spack.factory"

func init() {
	graft.Register(graft.Node[ports.PackageManagerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.FilesystemNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManagerFactory, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(runner, filesystem, log), nil
		},
	})
}

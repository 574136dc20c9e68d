package metaproject

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the metaproject builder Graft node.
const NodeID graft.ID = "engine.metaproject"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.FilesystemNodeID, config.PackagesNodeID, progrock.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			packages, err := graft.Dep[ports.PackageListLoader](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, filesystem, packages, telemetry, log), nil
		},
	})
}

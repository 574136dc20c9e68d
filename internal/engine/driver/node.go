package driver

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/mirror"             //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/spack"              //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	"github.com/WIPACrepo/cvmfs/internal/engine/view"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the build driver Graft node.
const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.FilesystemNodeID,
			spack.NodeID,
			mirror.NodeID,
			config.PackagesNodeID,
			cas.NodeID,
			compiler.NodeID,
			view.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			filesystem, err := graft.Dep[ports.Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			managers, err := graft.Dep[ports.PackageManagerFactory](ctx)
			if err != nil {
				return nil, err
			}
			mirrors, err := graft.Dep[ports.MirrorFactory](ctx)
			if err != nil {
				return nil, err
			}
			packages, err := graft.Dep[ports.PackageListLoader](ctx)
			if err != nil {
				return nil, err
			}
			reports, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}
			compilers, err := graft.Dep[*compiler.Bootstrapper](ctx)
			if err != nil {
				return nil, err
			}
			views, err := graft.Dep[*view.Assembler](ctx)
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
			return New(runner, filesystem, managers, mirrors, packages, reports, compilers, views, telemetry, log), nil
		},
	})
}

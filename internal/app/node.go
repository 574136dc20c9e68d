package app

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"github.com/WIPACrepo/cvmfs/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/WIPACrepo/cvmfs/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/WIPACrepo/cvmfs/internal/engine/driver"
	"github.com/WIPACrepo/cvmfs/internal/engine/metaproject"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command line needs besides the App itself.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			driver.NodeID,
			metaproject.NodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			drv, err := graft.Dep[*driver.Driver](ctx)
			if err != nil {
				return nil, err
			}
			builder, err := graft.Dep[*metaproject.Builder](ctx)
			if err != nil {
				return nil, err
			}
			reports, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, drv, builder, reports, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
}

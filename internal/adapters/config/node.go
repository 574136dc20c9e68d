package config

import (
	"context"

	"github.com/WIPACrepo/cvmfs/internal/adapters/logger"
	"github.com/WIPACrepo/cvmfs/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the configuration loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// PackagesNodeID is the unique identifier for the package-list loader Graft node.
	PackagesNodeID graft.ID = "adapter.package_list_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.PackageListLoader]{
		ID:        PackagesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageListLoader, error) {
			return NewPackageListLoader(), nil
		},
	})
}

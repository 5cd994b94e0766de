package deployer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/anvil/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/registry"
)

// NodeID is the unique identifier for the deployer Graft node.
const NodeID graft.ID = "engine.deployer"

func init() {
	graft.Register(graft.Node[*Deployer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			fs.LocatorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Deployer, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.LibraryLocator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			d := New(reg, locator, log)
			reg.SetFallback(d.Lookup)
			return d, nil
		},
	})
}

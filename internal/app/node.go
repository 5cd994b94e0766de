package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/deployer"
	"go.trai.ch/anvil/internal/engine/registry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			registry.NodeID,
			deployer.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	dep, err := graft.Dep[*deployer.Deployer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reg, dep, log), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}

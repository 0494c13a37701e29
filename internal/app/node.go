package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/bccproj/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/bccproj/internal/engine/buildtree"
	"go.trai.ch/bccproj/internal/engine/orchestrator"
	"go.trai.ch/bccproj/internal/engine/release"
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
			orchestrator.NodeID,
			buildtree.NodeID,
			release.NodeID,
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	tree, err := graft.Dep[*buildtree.Manager](ctx)
	if err != nil {
		return nil, err
	}

	packager, err := graft.Dep[*release.Packager](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, orch, tree, packager, log), nil
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

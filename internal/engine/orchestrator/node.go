package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/makefile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/version"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			makefile.NodeID,
			version.MarkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}

			marker, err := graft.Dep[ports.VersionMarker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tool, marker, log), nil
		},
	})
}

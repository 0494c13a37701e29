package buildtree

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/makefile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/version"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/core/ports"
)

// NodeID is the unique identifier for the build tree manager Graft node.
const NodeID graft.ID = "engine.buildtree"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			makefile.NodeID,
			version.MarkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
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

package release

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/archive" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/adapters/version" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/bccproj/internal/engine/orchestrator"
)

// NodeID is the unique identifier for the release packager Graft node.
const NodeID graft.ID = "engine.release"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			orchestrator.NodeID,
			version.ProberNodeID,
			archive.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Packager, error) {
			compiler, err := graft.Dep[*orchestrator.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.VersionProber](ctx)
			if err != nil {
				return nil, err
			}

			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(compiler, prober, archiver, hasher, log), nil
		},
	})
}

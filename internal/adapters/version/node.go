package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/shell"
	"go.trai.ch/bccproj/internal/core/ports"
)

const (
	// MarkerNodeID is the unique identifier for the version marker Graft node.
	MarkerNodeID graft.ID = "adapter.version_marker"
	// ProberNodeID is the unique identifier for the version prober Graft node.
	ProberNodeID graft.ID = "adapter.version_prober"
)

func init() {
	graft.Register(graft.Node[ports.VersionMarker]{
		ID:        MarkerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VersionMarker, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewMarker(executor), nil
		},
	})

	graft.Register(graft.Node[ports.VersionProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VersionProber, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(executor), nil
		},
	})
}

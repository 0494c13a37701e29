package makefile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/adapters/shell"
	"go.trai.ch/bccproj/internal/core/ports"
)

// NodeID is the unique identifier for the build tool Graft node.
const NodeID graft.ID = "adapter.build_tool"

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor), nil
		},
	})
}

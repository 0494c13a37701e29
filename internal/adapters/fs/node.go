package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bccproj/internal/core/ports"
)

// HasherNodeID is the unique identifier for the file hasher Graft node.
const HasherNodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}

package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/core/ports"
)

// LocatorNodeID is the unique identifier for the library locator Graft node.
const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.LibraryLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LibraryLocator, error) {
			return NewLocator(), nil
		},
	})
}

package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
)

const (
	// VerifierNodeID is the unique identifier for the verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}

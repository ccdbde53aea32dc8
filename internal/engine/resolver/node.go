package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/archive"   //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/fetch"     //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
)

// NodeID is the unique identifier for the dependency resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fetch.NodeID,
			archive.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(fetcher, extractor, verifier, log, tel), nil
		},
	})
}

package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.VerifierNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
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

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, verifier, hasher, log, tel), nil
		},
	})
}

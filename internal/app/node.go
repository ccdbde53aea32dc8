package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"github.com/jeremyj563/vsts-ahk-build/internal/engine/builder"
	"github.com/jeremyj563/vsts-ahk-build/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			builder.NodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	depResolver, err := graft.Dep[ports.DependencyResolver](ctx)
	if err != nil {
		return nil, err
	}

	b, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
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

	return New(loader, depResolver, b, store, log, tel), nil
}

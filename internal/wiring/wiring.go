// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/archive"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/cas"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/config"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/fetch"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/fs"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/logger"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/shell"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/jeremyj563/vsts-ahk-build/internal/app"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/engine/builder"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/engine/resolver"
)

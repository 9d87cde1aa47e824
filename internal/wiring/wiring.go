// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/compdb/internal/adapters/database"
	_ "go.trai.ch/compdb/internal/adapters/logger"
	_ "go.trai.ch/compdb/internal/adapters/watcher"
	_ "go.trai.ch/compdb/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/compdb/internal/app"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bccproj/internal/adapters/archive"
	_ "go.trai.ch/bccproj/internal/adapters/config"
	_ "go.trai.ch/bccproj/internal/adapters/fs"
	_ "go.trai.ch/bccproj/internal/adapters/logger"
	_ "go.trai.ch/bccproj/internal/adapters/makefile"
	_ "go.trai.ch/bccproj/internal/adapters/shell"
	_ "go.trai.ch/bccproj/internal/adapters/version"
	// Register app and engine nodes.
	_ "go.trai.ch/bccproj/internal/app"
	_ "go.trai.ch/bccproj/internal/engine/buildtree"
	_ "go.trai.ch/bccproj/internal/engine/orchestrator"
	_ "go.trai.ch/bccproj/internal/engine/release"
)

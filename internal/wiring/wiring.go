// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Smattr/scrutineer/internal/adapters/config"
	_ "github.com/Smattr/scrutineer/internal/adapters/fsprobe"
	_ "github.com/Smattr/scrutineer/internal/adapters/logger"
	_ "github.com/Smattr/scrutineer/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/Smattr/scrutineer/internal/app"
)

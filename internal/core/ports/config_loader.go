package ports

import "github.com/Smattr/scrutineer/internal/core/domain"

// ConfigLoader assembles the probing session from the optional session file
// and the operator's command-line overrides.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges the session file (if present) with the given overrides.
	// Command-line values win over file values.
	Load(overrides domain.Overrides) (*domain.Session, error)
}

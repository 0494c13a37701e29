package ports

import "go.trai.ch/bccproj/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings of the project rooted at root.
	// A project without a config file yields domain.DefaultConfig().
	Load(root string) (domain.Config, error)
}

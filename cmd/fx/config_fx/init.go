package config_fx

import (
	"log"

	"go.uber.org/fx"

	"skenk/internal/config"
)

var Module = fx.Provide(
	provideConfig,
)

func provideConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	return cfg
}

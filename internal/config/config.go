package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds the HTTP service configuration.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Mongo holds the document store configuration. An empty URI selects the
// in-memory store, which is only suitable for local development.
type Mongo struct {
	URI               string `envconfig:"MONGO_URI"`
	Database          string `envconfig:"MONGO_DATABASE" default:"teeseele"`
	ConnectTimeoutSec int    `envconfig:"MONGO_CONNECT_TIMEOUT_SEC" default:"10"`
}

type Config struct {
	Service Service
	Mongo   Mongo
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

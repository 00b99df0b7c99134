package config

import (
	"fmt"
	"time"
)

// ServerDB contains database connection settings for the aggregate server.
type ServerDB struct {
	// DSN is the PostgreSQL connection string. Empty means the server
	// falls back to an in-memory aggregate repository.
	DSN string
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	HTTPAddress string
	// RequestTimeout is the maximum duration for a single inbound request.
	RequestTimeout time.Duration
	// DB contains the aggregate database settings.
	DB ServerDB
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DB: ServerDB{
			DSN: cfg.Storage.DB.DSN,
		},
	}

	return serverCfg, serverCfg.validate()
}

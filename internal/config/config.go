// Package config loads the function's settings from the process environment.
//
// Variables are read with koanf, mapped onto Config by their lowercased
// names (TABLE_NAME -> table_name) and validated before the handler starts.
// A `.env` file in the working directory is loaded first, which is handy
// when running against DynamoDB Local.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the crew lookup function reads from its environment.
type Config struct {
	// TableName is the DynamoDB table keyed by (movieId, crewRole).
	TableName string `koanf:"table_name" validate:"required"`
	// Region is optional; the SDK's shared config is used when empty.
	Region string `koanf:"region"`
	// DynamoDBEndpoint overrides the service endpoint, e.g. http://localhost:8000.
	DynamoDBEndpoint string `koanf:"dynamodb_endpoint" validate:"omitempty,url"`
	// CrewIndexName points the query at a secondary index holding the
	// composite key. Empty means the table's primary key.
	CrewIndexName string `koanf:"crew_index_name"`
	LogLevel      string `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	// HideErrorDetail replaces the raw error text of 500 responses with
	// the Lambda request ID.
	HideErrorDetail bool `koanf:"hide_error_detail"`
}

const defaultLogLevel = "info"

// Load reads and validates the configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

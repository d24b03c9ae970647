package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// envBindings maps configuration keys to the environment variables that override them.
var envBindings = map[string]string{
	"services.auth_url":          "AUTH_SERVICE_URL",
	"services.catalog_url":       "CATALOG_SERVICE_URL",
	"services.chat_url":          "CHAT_SERVICE_URL",
	"services.matchmaking_url":   "MATCHMAKING_SERVICE_URL",
	"services.notifications_url": "NOTIFICATIONS_SERVICE_URL",
	"shipping.strategy":          "SHIPPING_STRATEGY",
	"shipping.easyship_url":      "EASYSHIP_API_URL",
	"shipping.easyship_token":    "EASYSHIP_API_TOKEN",
	"catalog.grpc_addr":          "CATALOG_GRPC_ADDR",
	"server.http_port":           "PORT",
	"log_level":                  "LOG_LEVEL",
	"log_format":                 "LOG_FORMAT",
}

// BindEnv registers the environment variables understood by the toolkit on v.
func BindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s to %s: %w", env, key, err)
		}
	}
	return nil
}

// Load builds a validated Configuration: struct defaults first, then every value
// known to v (bound flags, environment, explicit Set calls).
func Load(v *viper.Viper) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

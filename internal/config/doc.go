// Package config defines the configuration structure for the Swappo toolkit.
//
// Configuration is an explicit, immutable value built once at startup and passed
// to each component. Nothing reads the environment after Load returns.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server of the shipping function
//	├── Services       - Base URLs of the five Swappo services
//	├── Readiness      - Health polling budget and request timeouts
//	├── Shipping       - Estimate strategy and Easyship upstream
//	├── Catalog        - Catalog gRPC address
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Services Configuration
//
//	┌──────────────────┬─────────────────────────┬───────────────────────────┐
//	│ Field            │ Default                 │ Environment               │
//	├──────────────────┼─────────────────────────┼───────────────────────────┤
//	│ AuthURL          │ "http://localhost:8001" │ AUTH_SERVICE_URL          │
//	│ CatalogURL       │ "http://localhost:8002" │ CATALOG_SERVICE_URL       │
//	│ ChatURL          │ "http://localhost:8003" │ CHAT_SERVICE_URL          │
//	│ MatchmakingURL   │ "http://localhost:8004" │ MATCHMAKING_SERVICE_URL   │
//	│ NotificationsURL │ "http://localhost:8005" │ NOTIFICATIONS_SERVICE_URL │
//	└──────────────────┴─────────────────────────┴───────────────────────────┘
//
// # Readiness Configuration
//
//	┌────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field          │ Default │ Description                            │
//	├────────────────┼─────────┼────────────────────────────────────────┤
//	│ MaxAttempts    │ 30      │ Health probes per service              │
//	│ Interval       │ 1s      │ Fixed delay between probes             │
//	│ ProbeTimeout   │ 2s      │ Timeout of one health probe            │
//	│ RequestTimeout │ 10s     │ Timeout of one verification request    │
//	│ SmokeTimeout   │ 5s      │ Timeout of one smoke request           │
//	└────────────────┴─────────┴────────────────────────────────────────┘
//
// # Shipping Configuration
//
//	┌────────────────────┬───────────────────────────────────────────┬────────────────────┐
//	│ Field              │ Default                                   │ Environment        │
//	├────────────────────┼───────────────────────────────────────────┼────────────────────┤
//	│ Strategy           │ "formula"                                 │ SHIPPING_STRATEGY  │
//	│ EasyshipURL        │ "https://public-api-sandbox.easyship.com" │ EASYSHIP_API_URL   │
//	│ EasyshipToken      │ ""                                        │ EASYSHIP_API_TOKEN │
//	│ EasyshipTimeout    │ 10s                                       │                    │
//	│ BreakerMaxFailures │ 5                                         │                    │
//	│ BreakerTimeout     │ 30s                                       │                    │
//	└────────────────────┴───────────────────────────────────────────┴────────────────────┘
//
// Strategies:
//   - formula: fixed zone table, no upstream call
//   - easyship: cheapest Easyship rate, guarded by a circuit breaker
//
// # Loading
//
// Precedence, highest first: changed command line flags, environment variables,
// flag defaults, struct defaults.
//
//	v := viper.New()
//	_ = config.BindEnv(v)
//	_ = v.BindPFlags(cmd.Flags())
//	cfg, err := config.Load(v)
//
// Load applies the `default` struct tags with creasty/defaults, decodes v on
// top of them and runs Validate. Validate reports every problem at once.
//
// # Code Generation
//
// The package uses optgen to generate functional option helpers:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Services Readiness Shipping Catalog
//
// Generated helpers include:
//
//   - NewConfigurationWithOptions(...ConfigurationOption) - Create with options
//   - NewConfigurationWithOptionsAndDefaults(...ConfigurationOption) - Create with defaults + options
//   - WithShipping(Shipping), WithCatalog(Catalog), etc. - Set nested structs
//   - DebugMap() - Returns map for debug logging (respects debugmap tags)
//
// Field names are unique across the listed structs because every With helper
// lives in the same package. EasyshipToken is tagged debugmap:"sensitive".
package config

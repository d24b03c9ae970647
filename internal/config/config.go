package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/swappo/swappo-toolkit/internal/models"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Services Readiness Shipping Catalog

const (
	ShippingStrategyFormula  = "formula"
	ShippingStrategyEasyship = "easyship"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Configuration struct {
	Server    Server    `mapstructure:"server" debugmap:"visible"`
	Services  Services  `mapstructure:"services" debugmap:"visible"`
	Readiness Readiness `mapstructure:"readiness" debugmap:"visible"`
	Shipping  Shipping  `mapstructure:"shipping" debugmap:"visible"`
	Catalog   Catalog   `mapstructure:"catalog" debugmap:"visible"`
	LogFormat string    `mapstructure:"log_format" default:"console" debugmap:"visible"`
	LogLevel  string    `mapstructure:"log_level" default:"debug" debugmap:"visible"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" default:"dev" debugmap:"visible"`
	HTTPPort   int    `mapstructure:"http_port" default:"8080" debugmap:"visible"`
}

// Services holds the base URL of each Swappo service.
type Services struct {
	AuthURL          string `mapstructure:"auth_url" default:"http://localhost:8001" debugmap:"visible"`
	CatalogURL       string `mapstructure:"catalog_url" default:"http://localhost:8002" debugmap:"visible"`
	ChatURL          string `mapstructure:"chat_url" default:"http://localhost:8003" debugmap:"visible"`
	MatchmakingURL   string `mapstructure:"matchmaking_url" default:"http://localhost:8004" debugmap:"visible"`
	NotificationsURL string `mapstructure:"notifications_url" default:"http://localhost:8005" debugmap:"visible"`
}

// Readiness controls the health polling loop and the per-request timeouts of the verifier.
type Readiness struct {
	MaxAttempts    int           `mapstructure:"max_attempts" default:"30" debugmap:"visible"`
	Interval       time.Duration `mapstructure:"interval" default:"1s" debugmap:"visible"`
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout" default:"2s" debugmap:"visible"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" default:"10s" debugmap:"visible"`
	SmokeTimeout   time.Duration `mapstructure:"smoke_timeout" default:"5s" debugmap:"visible"`
}

type Shipping struct {
	Strategy           string        `mapstructure:"strategy" default:"formula" debugmap:"visible"`
	EasyshipURL        string        `mapstructure:"easyship_url" default:"https://public-api-sandbox.easyship.com" debugmap:"visible"`
	EasyshipToken      string        `mapstructure:"easyship_token" debugmap:"sensitive"`
	EasyshipTimeout    time.Duration `mapstructure:"timeout" default:"10s" debugmap:"visible"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures" default:"5" debugmap:"visible"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout" default:"30s" debugmap:"visible"`
}

type Catalog struct {
	GRPCAddr   string        `mapstructure:"grpc_addr" default:"localhost:50051" debugmap:"visible"`
	RPCTimeout time.Duration `mapstructure:"timeout" default:"5s" debugmap:"visible"`
}

// Endpoints returns the Swappo services in polling order.
func (c *Configuration) Endpoints() []models.ServiceEndpoint {
	return []models.ServiceEndpoint{
		{Name: "Auth", BaseURL: c.Services.AuthURL},
		{Name: "Catalog", BaseURL: c.Services.CatalogURL},
		{Name: "Chat", BaseURL: c.Services.ChatURL},
		{Name: "Matchmaking", BaseURL: c.Services.MatchmakingURL},
		{Name: "Notifications", BaseURL: c.Services.NotificationsURL},
	}
}

func (c *Configuration) Validate() error {
	var errs []error

	for _, e := range c.Endpoints() {
		if err := validateBaseURL(e.BaseURL); err != nil {
			errs = append(errs, fmt.Errorf("%s service url: %w", e.Name, err))
		}
	}

	if c.Readiness.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("readiness max attempts must be at least 1, got %d", c.Readiness.MaxAttempts))
	}
	if c.Readiness.Interval < 0 {
		errs = append(errs, fmt.Errorf("readiness interval must not be negative"))
	}

	switch c.Shipping.Strategy {
	case ShippingStrategyFormula:
	case ShippingStrategyEasyship:
		if err := validateBaseURL(c.Shipping.EasyshipURL); err != nil {
			errs = append(errs, fmt.Errorf("easyship url: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid shipping strategy %q: must be %q or %q", c.Shipping.Strategy, ShippingStrategyFormula, ShippingStrategyEasyship))
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", c.LogFormat))
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.Server.HTTPPort))
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q: missing host", raw)
	}
	return nil
}

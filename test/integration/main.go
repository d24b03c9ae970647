package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/test/integration/infra"
)

type configuration struct {
	InfraMode          string
	MaxAttempts        int
	Interval           time.Duration
	RequestTimeout     time.Duration
	FakeHealthFailures int
}

var (
	cfg          configuration
	toolkitCfg   *config.Configuration
	infraManager infra.InfraManager
)

func (c configuration) Validate() error {
	if c.InfraMode != infra.ModeExternal && c.InfraMode != infra.ModeFake {
		return fmt.Errorf("invalid infra-mode %q: must be '%s' or '%s'", c.InfraMode, infra.ModeExternal, infra.ModeFake)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max-attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

func main() {
	// Service URLs come from AUTH_SERVICE_URL .. NOTIFICATIONS_SERVICE_URL.
	v := viper.New()
	if err := config.BindEnv(v); err != nil {
		log.Fatalf("failed to bind environment: %v", err)
	}
	loaded, err := config.Load(v)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	toolkitCfg = loaded

	flag.StringVar(&cfg.InfraMode, "infra-mode", infra.ModeExternal, "Infrastructure mode: 'external' (services already running) or 'fake' (in-process fake stack)")
	flag.IntVar(&cfg.MaxAttempts, "max-attempts", toolkitCfg.Readiness.MaxAttempts, "Health probes per service before the run is aborted")
	flag.DurationVar(&cfg.Interval, "interval", toolkitCfg.Readiness.Interval, "Delay between two health probes")
	flag.DurationVar(&cfg.RequestTimeout, "request-timeout", toolkitCfg.Readiness.RequestTimeout, "Timeout of every request made by the specs")
	flag.IntVar(&cfg.FakeHealthFailures, "fake-health-failures", 2, "Health probes each fake service fails before answering 200 (fake mode only)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	switch cfg.InfraMode {
	case infra.ModeExternal:
		infraManager = infra.NewExternalInfraManager(toolkitCfg.Endpoints())
	case infra.ModeFake:
		infraManager = infra.NewFakeInfraManager(cfg.FakeHealthFailures)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "Swappo Integration Suite") {
		os.Exit(1)
	}
}

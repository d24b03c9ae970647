package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/handlers"
	"github.com/swappo/swappo-toolkit/internal/server"
	"github.com/swappo/swappo-toolkit/internal/services"
	"github.com/swappo/swappo-toolkit/pkg/easyship"
)

const shutdownTimeout = 10 * time.Second

func newShippingCommand(c *cli, defaults *config.Configuration) *cobra.Command {
	shipping := &cobra.Command{
		Use:   "shipping",
		Short: "Shipping estimate function",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the shipping estimate function over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShipping(cmd.Context(), c.cfg)
		},
	}

	flags := serve.Flags()
	flags.Int("http-port", defaults.Server.HTTPPort, "HTTP listen port")
	flags.String("server-mode", defaults.Server.ServerMode, "Server mode: dev or prod")
	flags.String("strategy", defaults.Shipping.Strategy, "Estimate strategy: formula or easyship")
	flags.String("easyship-url", defaults.Shipping.EasyshipURL, "Easyship API base URL")
	flags.Duration("easyship-timeout", defaults.Shipping.EasyshipTimeout, "Timeout of a single Easyship request")
	c.bind(flags, map[string]string{
		"server.http_port":      "http-port",
		"server.mode":           "server-mode",
		"shipping.strategy":     "strategy",
		"shipping.easyship_url": "easyship-url",
		"shipping.timeout":      "easyship-timeout",
	})

	shipping.AddCommand(serve)
	return shipping
}

func newEstimator(cfg config.Shipping) (services.Estimator, error) {
	switch cfg.Strategy {
	case config.ShippingStrategyFormula:
		return services.NewFormulaEstimator(), nil
	case config.ShippingStrategyEasyship:
		if cfg.EasyshipToken == "" {
			zap.S().Named("shipping").Warn("EASYSHIP_API_TOKEN is not set, rate requests will be rejected upstream")
		}
		client := easyship.NewClient(cfg.EasyshipURL, cfg.EasyshipToken,
			easyship.WithHTTPClient(&http.Client{Timeout: cfg.EasyshipTimeout}),
			easyship.WithCircuitBreaker(easyship.NewCircuitBreaker("easyship", cfg.BreakerTimeout, cfg.BreakerMaxFailures)),
		)
		return services.NewRateEstimator(client), nil
	default:
		return nil, fmt.Errorf("unknown shipping strategy %q", cfg.Strategy)
	}
}

func runShipping(ctx context.Context, cfg *config.Configuration) error {
	estimator, err := newEstimator(cfg.Shipping)
	if err != nil {
		return err
	}
	h := handlers.New(services.NewShippingService(estimator))

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()
	zap.S().Named("shipping").Infow("shipping function started", "strategy", estimator.Name(), "port", cfg.Server.HTTPPort)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

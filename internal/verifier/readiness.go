package verifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
	"github.com/swappo/swappo-toolkit/pkg/swappo"
)

const HealthPath = "/health"

type ReadinessOptions struct {
	MaxAttempts  int
	Interval     time.Duration
	ProbeTimeout time.Duration
	HTTPClient   *http.Client
	// Progress receives one human readable line per service. Nil disables it.
	Progress io.Writer
}

func DefaultReadinessOptions() ReadinessOptions {
	return ReadinessOptions{
		MaxAttempts:  30,
		Interval:     time.Second,
		ProbeTimeout: 2 * time.Second,
	}
}

// WaitForServices polls each endpoint's health path in order until it answers 200.
// It stops at the first service that exhausts its attempt budget.
func WaitForServices(ctx context.Context, endpoints []models.ServiceEndpoint, opts ReadinessOptions) error {
	progress(opts.Progress, color.FgCyan, "Waiting for services to be healthy...")
	for _, e := range endpoints {
		if err := WaitForService(ctx, e, opts); err != nil {
			progress(opts.Progress, color.FgRed, "%s service failed to become healthy", e.Name)
			return err
		}
		progress(opts.Progress, color.FgGreen, "%s service is healthy", e.Name)
	}
	return nil
}

// WaitForService polls a single endpoint with a constant backoff.
func WaitForService(ctx context.Context, endpoint models.ServiceEndpoint, opts ReadinessOptions) error {
	log := zap.S().Named("readiness")

	if opts.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", opts.MaxAttempts)
	}

	client, err := swappo.NewClient(endpoint, opts.HTTPClient)
	if err != nil {
		return err
	}

	started := time.Now()
	attempts := 0
	probe := func() (int, error) {
		attempts++
		probeCtx := ctx
		if opts.ProbeTimeout > 0 {
			var cancel context.CancelFunc
			probeCtx, cancel = context.WithTimeout(ctx, opts.ProbeTimeout)
			defer cancel()
		}

		resp, err := client.Get(probeCtx, HealthPath)
		if err != nil {
			return 0, err
		}
		return resp.StatusCode, HealthOK.Check(endpoint.Name+" health", resp.StatusCode)
	}

	_, err = backoff.Retry(ctx, probe,
		backoff.WithBackOff(backoff.NewConstantBackOff(opts.Interval)),
		backoff.WithMaxTries(uint(opts.MaxAttempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Debugw("service not healthy yet", "service", endpoint.Name, "attempt", attempts, "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		log.Errorw("service failed to become healthy", "service", endpoint.Name, "attempts", attempts, "error", err)
		return srvErrors.NewServiceNotReadyError(endpoint.Name, attempts, time.Since(started), err)
	}

	log.Infow("service is healthy", "service", endpoint.Name, "attempts", attempts)
	return nil
}

func progress(w io.Writer, attr color.Attribute, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = color.New(attr).Fprintf(w, format+"\n", args...)
}

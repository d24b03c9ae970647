package easyship

import (
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type CircuitBreaker interface {
	Execute(fn func() error) error
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

// NewCircuitBreaker opens after maxFailures consecutive failures and probes again after timeout.
func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Execute returns fn's own error unchanged. Rejections by an open or half-open
// breaker are wrapped with the breaker name.
func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	var fnErr error
	_, err := g.breaker.Execute(func() (interface{}, error) {
		fnErr = fn()
		return nil, fnErr
	})
	if err == nil || err == fnErr {
		return err
	}
	return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
}

type noopBreaker struct{}

func (noopBreaker) Execute(fn func() error) error {
	return fn()
}

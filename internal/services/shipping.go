package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/metrics"
	"github.com/swappo/swappo-toolkit/internal/models"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

// Estimator computes a shipping estimate for a single parcel.
type Estimator interface {
	Estimate(ctx context.Context, req models.ShippingRequest) (*models.ShippingEstimate, error)
	Name() string
}

type ShippingService struct {
	estimator Estimator
}

func NewShippingService(estimator Estimator) *ShippingService {
	return &ShippingService{estimator: estimator}
}

func (s *ShippingService) Strategy() string {
	return s.estimator.Name()
}

// Estimate runs the configured estimator and records the outcome.
func (s *ShippingService) Estimate(ctx context.Context, req models.ShippingRequest) (*models.ShippingEstimate, error) {
	strategy := s.estimator.Name()
	log := zap.S().Named("shipping_service")

	estimate, err := s.estimator.Estimate(ctx, req)
	if err != nil {
		metrics.ObserveEstimate(strategy, outcome(err))
		log.Warnw("estimate failed", "strategy", strategy, "from", req.FromCountry, "to", req.ToCountry, "error", err)
		return nil, err
	}

	metrics.ObserveEstimate(strategy, metrics.OutcomeSuccess)
	metrics.ObserveCost(strategy, estimate.Currency, estimate.Cost)
	log.Debugw("estimate computed", "strategy", strategy, "from", req.FromCountry, "to", req.ToCountry,
		"weight_kg", req.WeightKg, "cost", estimate.Cost, "courier", estimate.Courier)

	return estimate, nil
}

func outcome(err error) string {
	switch {
	case srvErrors.IsMalformedRequestError(err):
		return metrics.OutcomeBadRequest
	case srvErrors.IsNoRatesError(err):
		return metrics.OutcomeNoRates
	case srvErrors.IsUpstreamError(err):
		return metrics.OutcomeUpstream
	default:
		return metrics.OutcomeError
	}
}

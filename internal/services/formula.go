package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/internal/util"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

const (
	FormulaBaseCost = 8.00
	FormulaPerKg    = 6.50
	FormulaCurrency = "USD"
)

// euCountries are the ISO 3166-1 alpha-2 codes of the EU member states.
var euCountries = []string{
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE", "GR", "HU", "IE",
	"IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT", "RO", "SK", "SI", "ES", "SE",
}

type zone struct {
	cost         float64
	courier      string
	deliveryDays string
}

var (
	zoneDomestic      = zone{cost: 0, courier: "National Post", deliveryDays: "2-4 business days"}
	zoneEU            = zone{cost: 12.00, courier: "DHL Express EU", deliveryDays: "3-5 business days"}
	zoneUS            = zone{cost: 18.00, courier: "FedEx International", deliveryDays: "5-8 business days"}
	zoneInternational = zone{cost: 25.00, courier: "DHL Express Worldwide", deliveryDays: "7-14 business days"}
)

// FormulaEstimator prices a parcel as base + weight*rate + zone surcharge.
type FormulaEstimator struct{}

func NewFormulaEstimator() *FormulaEstimator {
	return &FormulaEstimator{}
}

func (f *FormulaEstimator) Name() string {
	return "formula"
}

func (f *FormulaEstimator) Estimate(_ context.Context, req models.ShippingRequest) (*models.ShippingEstimate, error) {
	if req.WeightKg <= 0 {
		return nil, srvErrors.NewMalformedRequestError(fmt.Sprintf("weight_kg must be positive, got %v", req.WeightKg))
	}

	from := strings.ToUpper(req.FromCountry)
	to := strings.ToUpper(req.ToCountry)
	z := classify(from, to)

	weightCost := req.WeightKg * FormulaPerKg

	return &models.ShippingEstimate{
		Cost:         util.Round(FormulaBaseCost + weightCost + z.cost),
		Currency:     FormulaCurrency,
		Courier:      z.courier,
		DeliveryDays: z.deliveryDays,
		Breakdown: &models.CostBreakdown{
			BaseCost:    FormulaBaseCost,
			WeightCost:  util.Round(weightCost),
			ZoneCost:    z.cost,
			FromCountry: from,
			ToCountry:   to,
			WeightKg:    req.WeightKg,
		},
	}, nil
}

// classify applies the zone rules in priority order.
func classify(from, to string) zone {
	switch {
	case from == to:
		return zoneDomestic
	case util.Contains(euCountries, from) && util.Contains(euCountries, to):
		return zoneEU
	case from == "US" || to == "US":
		return zoneUS
	default:
		return zoneInternational
	}
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/pkg/easyship"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

// Synthetic parcel sent with every rate request.
const (
	parcelSideCm           = 10
	parcelDeclaredValue    = 50
	parcelDeclaredCurrency = "USD"
	taxesPaidBySender      = "Sender"
)

// RatesClient is the rate-quote API used by RateEstimator.
type RatesClient interface {
	Rates(ctx context.Context, req easyship.RatesRequest) ([]easyship.Rate, error)
}

// RateEstimator quotes a parcel through a carrier-rate API and keeps the cheapest offer.
type RateEstimator struct {
	client RatesClient
}

func NewRateEstimator(client RatesClient) *RateEstimator {
	return &RateEstimator{client: client}
}

func (r *RateEstimator) Name() string {
	return "easyship"
}

func (r *RateEstimator) Estimate(ctx context.Context, req models.ShippingRequest) (*models.ShippingEstimate, error) {
	if req.WeightKg <= 0 {
		return nil, srvErrors.NewMalformedRequestError(fmt.Sprintf("weight_kg must be positive, got %v", req.WeightKg))
	}

	rates, err := r.client.Rates(ctx, BuildRatesRequest(req))
	if err != nil {
		return nil, err
	}

	quotes := make([]models.RateQuote, 0, len(rates))
	for _, rate := range rates {
		quotes = append(quotes, models.RateQuote{
			CourierName: rate.CourierName,
			TotalCharge: rate.TotalCharge,
			Currency:    rate.Currency,
		})
	}

	cheapest, ok := models.CheapestRate(quotes)
	if !ok {
		return nil, srvErrors.NewNoRatesError()
	}

	return &models.ShippingEstimate{
		Cost:     cheapest.TotalCharge,
		Currency: cheapest.Currency,
		Courier:  cheapest.CourierName,
	}, nil
}

// BuildRatesRequest describes req as a single synthetic 10x10x10 parcel.
func BuildRatesRequest(req models.ShippingRequest) easyship.RatesRequest {
	return easyship.RatesRequest{
		OriginCountryAlpha2:      strings.ToUpper(req.FromCountry),
		DestinationCountryAlpha2: strings.ToUpper(req.ToCountry),
		DestinationCity:          req.ToCity,
		DestinationPostalCode:    req.ToPostalCode,
		DestinationState:         req.ToState,
		TaxesDutiesPaidBy:        taxesPaidBySender,
		IsInsured:                false,
		Items: []easyship.RatesItem{
			{
				ActualWeight:         req.WeightKg,
				Height:               parcelSideCm,
				Width:                parcelSideCm,
				Length:               parcelSideCm,
				DeclaredCurrency:     parcelDeclaredCurrency,
				DeclaredCustomsValue: parcelDeclaredValue,
			},
		},
	}
}

package models

const (
	DefaultFromCountry = "US"
	DefaultToCountry   = "US"
	DefaultWeightKg    = 1.0
)

// ShippingRequest describes a single parcel to estimate.
type ShippingRequest struct {
	FromCountry  string
	ToCountry    string
	ToCity       string
	ToPostalCode string
	ToState      string
	WeightKg     float64
}

// CostBreakdown itemizes a formula estimate.
type CostBreakdown struct {
	BaseCost    float64 `json:"base_cost"`
	WeightCost  float64 `json:"weight_cost"`
	ZoneCost    float64 `json:"zone_cost"`
	FromCountry string  `json:"from_country"`
	ToCountry   string  `json:"to_country"`
	WeightKg    float64 `json:"weight_kg"`
}

// ShippingEstimate is the result returned to callers of the shipping function.
type ShippingEstimate struct {
	Cost         float64        `json:"cost"`
	Currency     string         `json:"currency"`
	Courier      string         `json:"courier"`
	DeliveryDays string         `json:"delivery_days,omitempty"`
	Breakdown    *CostBreakdown `json:"breakdown,omitempty"`
}

// RateQuote is a single carrier offer returned by a rates API.
type RateQuote struct {
	CourierName string
	TotalCharge float64
	Currency    string
}

// CheapestRate returns the quote with the lowest total charge. Ties keep the
// first quote. The boolean is false when quotes is empty.
func CheapestRate(quotes []RateQuote) (RateQuote, bool) {
	if len(quotes) == 0 {
		return RateQuote{}, false
	}
	cheapest := quotes[0]
	for _, q := range quotes[1:] {
		if q.TotalCharge < cheapest.TotalCharge {
			cheapest = q
		}
	}
	return cheapest, true
}

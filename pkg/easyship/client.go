package easyship

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

const upstreamName = "Easyship"

type RatesItem struct {
	ActualWeight         float64 `json:"actual_weight"`
	Height               float64 `json:"height"`
	Width                float64 `json:"width"`
	Length               float64 `json:"length"`
	DeclaredCurrency     string  `json:"declared_currency"`
	DeclaredCustomsValue float64 `json:"declared_customs_value"`
}

type RatesRequest struct {
	OriginCountryAlpha2      string      `json:"origin_country_alpha2"`
	DestinationCountryAlpha2 string      `json:"destination_country_alpha2"`
	DestinationCity          string      `json:"destination_city,omitempty"`
	DestinationPostalCode    string      `json:"destination_postal_code,omitempty"`
	DestinationState         string      `json:"destination_state,omitempty"`
	TaxesDutiesPaidBy        string      `json:"taxes_duties_paid_by"`
	IsInsured                bool        `json:"is_insured"`
	Items                    []RatesItem `json:"items"`
}

type Rate struct {
	CourierName     string  `json:"courier_name"`
	TotalCharge     float64 `json:"total_charge"`
	Currency        string  `json:"currency"`
	MinDeliveryTime int     `json:"min_delivery_time,omitempty"`
	MaxDeliveryTime int     `json:"max_delivery_time,omitempty"`
}

type RatesResponse struct {
	Rates []Rate `json:"rates"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	breaker    CircuitBreaker
}

type Option func(c *Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithCircuitBreaker(b CircuitBreaker) Option {
	return func(c *Client) { c.breaker = b }
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    noopBreaker{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Rates asks Easyship for the rates of a shipment
// POST /rates
func (c *Client) Rates(ctx context.Context, body RatesRequest) ([]Rate, error) {
	var rates []Rate
	err := c.breaker.Execute(func() error {
		var err error
		rates, err = c.rates(ctx, body)
		return err
	})
	return rates, err
}

func (c *Client) rates(ctx context.Context, body RatesRequest) ([]Rate, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rates request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rates", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("easyship rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		zap.S().Named("easyship").Errorw("easyship API error", "status", resp.StatusCode, "body", string(text))
		return nil, srvErrors.NewUpstreamError(upstreamName, resp.StatusCode, string(text))
	}

	var out RatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode easyship rates: %w", err)
	}
	return out.Rates, nil
}

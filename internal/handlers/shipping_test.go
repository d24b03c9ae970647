package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/swappo/swappo-toolkit/internal/handlers"
	"github.com/swappo/swappo-toolkit/internal/server/middlewares"
	"github.com/swappo/swappo-toolkit/internal/services"
	"github.com/swappo/swappo-toolkit/pkg/easyship"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

type stubRates struct {
	rates []easyship.Rate
	err   error
	last  easyship.RatesRequest
}

func (s *stubRates) Rates(_ context.Context, req easyship.RatesRequest) ([]easyship.Rate, error) {
	s.last = req
	return s.rates, s.err
}

type response struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error"`
	Estimate map[string]any `json:"estimate"`
	Status   string         `json:"status"`
	Service  string         `json:"service"`
	Strategy string         `json:"strategy"`
}

func newEngine(estimator services.Estimator) *gin.Engine {
	engine := gin.New()
	engine.Use(middlewares.CORS(middlewares.DefaultCORSOptions()))
	handlers.RegisterHandlers(engine, handlers.New(services.NewShippingService(estimator)))
	return engine
}

func do(engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var resp response
	if rec.Body.Len() > 0 {
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
	}
	return rec, resp
}

var _ = Describe("ShippingEstimate handler", func() {
	Context("formula strategy", func() {
		var engine *gin.Engine

		BeforeEach(func() {
			engine = newEngine(services.NewFormulaEstimator())
		})

		It("should estimate a domestic parcel", func() {
			// When
			rec, resp := do(engine, http.MethodPost, "/", `{"from_country":"US","to_country":"US","weight_kg":2}`)

			// Then
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
			Expect(resp.Success).To(BeTrue())
			Expect(resp.Estimate["cost"]).To(Equal(21.0))
			Expect(resp.Estimate["currency"]).To(Equal("USD"))
			Expect(resp.Estimate["courier"]).To(Equal("National Post"))
			Expect(resp.Estimate["delivery_days"]).To(Equal("2-4 business days"))
			Expect(resp.Estimate["breakdown"]).To(HaveKeyWithValue("zone_cost", 0.0))
		})

		It("should serve the same function on /shipping-estimate", func() {
			rec, resp := do(engine, http.MethodPost, "/shipping-estimate", `{"from_country":"DE","to_country":"FR","weight_kg":1}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(resp.Estimate["cost"]).To(Equal(26.5))
			Expect(resp.Estimate["courier"]).To(Equal("DHL Express EU"))
		})

		It("should apply defaults for missing fields", func() {
			rec, resp := do(engine, http.MethodPost, "/", `{"to_country":"US"}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(resp.Estimate["cost"]).To(Equal(14.5))
			Expect(resp.Estimate["breakdown"]).To(HaveKeyWithValue("from_country", "US"))
			Expect(resp.Estimate["breakdown"]).To(HaveKeyWithValue("weight_kg", 1.0))
		})

		It("should accept a weight sent as a numeric string", func() {
			rec, resp := do(engine, http.MethodPost, "/", `{"to_country":"US","weight_kg":"2"}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(resp.Estimate["cost"]).To(Equal(21.0))
			Expect(resp.Estimate["breakdown"]).To(HaveKeyWithValue("weight_kg", 2.0))
		})

		It("should answer GET with a health payload", func() {
			rec, resp := do(engine, http.MethodGet, "/", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(resp.Status).To(Equal("healthy"))
			Expect(resp.Service).To(Equal("shipping-estimates"))
			Expect(resp.Strategy).To(Equal("formula"))
		})

		It("should answer preflight with 204 and no body", func() {
			rec, _ := do(engine, http.MethodOptions, "/", "")

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Body.Len()).To(BeZero())
			Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(Equal("POST, GET, OPTIONS"))
		})

		It("should reject other methods with a JSON 405", func() {
			rec, resp := do(engine, http.MethodDelete, "/", "")

			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(resp.Success).To(BeFalse())
			Expect(resp.Error).To(Equal("method not allowed"))
			Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		DescribeTable("malformed bodies",
			func(body, message string) {
				rec, resp := do(engine, http.MethodPost, "/", body)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Success).To(BeFalse())
				Expect(resp.Error).To(Equal(message))
				Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
			},
			Entry("absent body", "", "Request body must be JSON"),
			Entry("not JSON", "weight=2", "Request body must be JSON"),
			Entry("empty object", "{}", "Request body must be JSON"),
			Entry("array", "[1,2]", "Request body must be JSON"),
			Entry("null", "null", "Request body must be JSON"),
			Entry("string weight", `{"weight_kg":"heavy"}`, "weight_kg must be a number"),
			Entry("non-finite string weight", `{"weight_kg":"NaN"}`, "weight_kg must be a number"),
			Entry("boolean weight", `{"weight_kg":true}`, "weight_kg must be a number"),
			Entry("trailing data", `{"weight_kg":2} trailing`, "Request body must be JSON"),
			Entry("two objects", `{"weight_kg":2}{"weight_kg":3}`, "Request body must be JSON"),
			Entry("numeric country", `{"to_country":33}`, "to_country must be a string"),
			Entry("zero weight", `{"weight_kg":0}`, "weight_kg must be positive, got 0"),
		)
	})

	Context("rate lookup strategy", func() {
		var (
			rates  *stubRates
			engine *gin.Engine
		)

		BeforeEach(func() {
			rates = &stubRates{}
			engine = newEngine(services.NewRateEstimator(rates))
		})

		It("should return the cheapest quote", func() {
			// Given
			rates.rates = []easyship.Rate{
				{CourierName: "UPS", TotalCharge: 40, Currency: "USD"},
				{CourierName: "SF Express", TotalCharge: 22.4, Currency: "USD"},
			}

			// When
			rec, resp := do(engine, http.MethodPost, "/", `{"from_country":"US","to_country":"HK","to_city":"Hong Kong","weight_kg":1.5}`)

			// Then
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(resp.Estimate).To(Equal(map[string]any{"cost": 22.4, "currency": "USD", "courier": "SF Express"}))
			Expect(rates.last.DestinationCity).To(Equal("Hong Kong"))
			Expect(rates.last.Items[0].ActualWeight).To(Equal(1.5))
		})

		It("should map zero quotes to 404", func() {
			rec, resp := do(engine, http.MethodPost, "/", `{"to_country":"AQ"}`)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(resp.Error).To(Equal("No shipping rates available"))
		})

		It("should map upstream failures to 500 naming the status", func() {
			rates.err = srvErrors.NewUpstreamError("Easyship", 503, "unavailable")

			rec, resp := do(engine, http.MethodPost, "/", `{"to_country":"CA"}`)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(resp.Error).To(Equal("Easyship API error: 503"))
		})

		It("should map unclassified errors to 500 with their message", func() {
			rates.err = errors.New("dial tcp: connection refused")

			rec, resp := do(engine, http.MethodPost, "/", `{"to_country":"CA"}`)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(resp.Success).To(BeFalse())
			Expect(resp.Error).To(Equal("dial tcp: connection refused"))
		})

		It("should report its strategy on GET", func() {
			_, resp := do(engine, http.MethodGet, "/shipping-estimate", "")

			Expect(resp.Strategy).To(Equal("easyship"))
		})
	})
})

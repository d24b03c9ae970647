package easyship_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sony/gobreaker"

	"github.com/swappo/swappo-toolkit/pkg/easyship"
	srvErrors "github.com/swappo/swappo-toolkit/pkg/errors"
)

var _ = Describe("Client", func() {
	var (
		ctx      context.Context
		status   int
		response string
		received easyship.RatesRequest
		authz    string
		target   string
		calls    atomic.Int32
		srv      *httptest.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
		status = http.StatusOK
		response = `{"rates":[{"courier_name":"USPS","total_charge":15.5,"currency":"USD"}]}`
		calls.Store(0)

		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			target = r.Method + " " + r.URL.Path
			authz = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
		DeferCleanup(srv.Close)
	})

	request := easyship.RatesRequest{
		OriginCountryAlpha2:      "US",
		DestinationCountryAlpha2: "CA",
		DestinationCity:          "Toronto",
		TaxesDutiesPaidBy:        "Sender",
		Items:                    []easyship.RatesItem{{ActualWeight: 2, Height: 10, Width: 10, Length: 10, DeclaredCurrency: "USD", DeclaredCustomsValue: 50}},
	}

	It("should post the shipment and decode the rates", func() {
		client := easyship.NewClient(srv.URL+"/", "sand_token", easyship.WithHTTPClient(srv.Client()))

		rates, err := client.Rates(ctx, request)

		Expect(err).NotTo(HaveOccurred())
		Expect(rates).To(HaveLen(1))
		Expect(rates[0].CourierName).To(Equal("USPS"))
		Expect(rates[0].TotalCharge).To(Equal(15.5))
		Expect(target).To(Equal("POST /rates"))
		Expect(authz).To(Equal("Bearer sand_token"))
		Expect(received.DestinationCity).To(Equal("Toronto"))
		Expect(received.Items[0].ActualWeight).To(Equal(2.0))
	})

	It("should report a non-success status as an upstream error", func() {
		status = http.StatusUnprocessableEntity
		response = `{"error":"bad country"}`
		client := easyship.NewClient(srv.URL, "sand_token")

		_, err := client.Rates(ctx, request)

		var upstream *srvErrors.UpstreamError
		Expect(errors.As(err, &upstream)).To(BeTrue())
		Expect(upstream.StatusCode).To(Equal(http.StatusUnprocessableEntity))
		Expect(err.Error()).To(Equal("Easyship API error: 422"))
	})

	It("should return an empty list when no rates are offered", func() {
		response = `{"rates":[]}`
		client := easyship.NewClient(srv.URL, "")

		rates, err := client.Rates(ctx, request)

		Expect(err).NotTo(HaveOccurred())
		Expect(rates).To(BeEmpty())
		Expect(authz).To(BeEmpty())
	})

	// Given an upstream that keeps failing
	// When the consecutive failure threshold is reached
	// Then the breaker should open and stop calling the upstream
	It("should stop calling a failing upstream once the breaker opens", func() {
		status = http.StatusBadGateway
		client := easyship.NewClient(srv.URL, "t",
			easyship.WithCircuitBreaker(easyship.NewCircuitBreaker("easyship", time.Minute, 2)))

		for range 2 {
			_, err := client.Rates(ctx, request)
			Expect(srvErrors.IsUpstreamError(err)).To(BeTrue())
		}

		_, err := client.Rates(ctx, request)

		Expect(errors.Is(err, gobreaker.ErrOpenState)).To(BeTrue())
		Expect(calls.Load()).To(Equal(int32(2)))
	})
})

var _ = Describe("CircuitBreaker", func() {
	It("should pass through success", func() {
		b := easyship.NewCircuitBreaker("ok", time.Second, 3)

		Expect(b.Execute(func() error { return nil })).To(Succeed())
	})

	It("should return the call's own failure unchanged", func() {
		b := easyship.NewCircuitBreaker("named", time.Second, 3)
		boom := errors.New("boom")

		err := b.Execute(func() error { return boom })

		Expect(err).To(BeIdenticalTo(boom))
	})

	It("should wrap rejections with the breaker name", func() {
		b := easyship.NewCircuitBreaker("named", time.Minute, 1)
		_ = b.Execute(func() error { return errors.New("boom") })

		err := b.Execute(func() error { return nil })

		Expect(err).To(MatchError("breaker (named): circuit breaker is open"))
		Expect(errors.Is(err, gobreaker.ErrOpenState)).To(BeTrue())
	})
})

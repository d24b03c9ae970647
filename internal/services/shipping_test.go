package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/swappo/swappo-toolkit/internal/metrics"
	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/internal/services"
	"github.com/swappo/swappo-toolkit/pkg/easyship"
)

var _ = Describe("ShippingService", func() {
	It("should report the estimator strategy", func() {
		Expect(services.NewShippingService(services.NewFormulaEstimator()).Strategy()).To(Equal("formula"))
		Expect(services.NewShippingService(services.NewRateEstimator(&fakeRatesClient{})).Strategy()).To(Equal("easyship"))
	})

	It("should count successful estimates", func() {
		// Given
		svc := services.NewShippingService(services.NewFormulaEstimator())
		counter := metrics.ShippingEstimatesTotal.WithLabelValues("formula", metrics.OutcomeSuccess)
		before := testutil.ToFloat64(counter)

		// When
		_, err := svc.Estimate(context.Background(), models.ShippingRequest{FromCountry: "US", ToCountry: "US", WeightKg: 1})

		// Then
		Expect(err).NotTo(HaveOccurred())
		Expect(testutil.ToFloat64(counter)).To(Equal(before + 1))
	})

	It("should count failures by outcome", func() {
		// Given
		svc := services.NewShippingService(services.NewRateEstimator(&fakeRatesClient{rates: []easyship.Rate{}}))
		counter := metrics.ShippingEstimatesTotal.WithLabelValues("easyship", metrics.OutcomeNoRates)
		before := testutil.ToFloat64(counter)

		// When
		_, err := svc.Estimate(context.Background(), models.ShippingRequest{FromCountry: "US", ToCountry: "US", WeightKg: 1})

		// Then
		Expect(err).To(HaveOccurred())
		Expect(testutil.ToFloat64(counter)).To(Equal(before + 1))
	})
})

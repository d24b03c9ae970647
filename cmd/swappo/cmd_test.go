package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/services"
)

var _ = Describe("swappo", func() {
	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		root := newRootCommand()
		root.SetOut(out)
		root.SetErr(out)
		root.SetArgs(args)
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	BeforeEach(func() {
		color.NoColor = true
	})

	Describe("newEstimator", func() {
		It("should build the formula estimator by default", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			e, err := newEstimator(cfg.Shipping)

			Expect(err).NotTo(HaveOccurred())
			Expect(e).To(BeAssignableToTypeOf(&services.FormulaEstimator{}))
		})

		It("should build the rate estimator for easyship", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Shipping.Strategy = config.ShippingStrategyEasyship

			e, err := newEstimator(cfg.Shipping)

			Expect(err).NotTo(HaveOccurred())
			Expect(e.Name()).To(Equal("easyship"))
		})

		It("should reject an unknown strategy", func() {
			_, err := newEstimator(config.Shipping{Strategy: "pigeon"})
			Expect(err).To(MatchError(ContainSubstring("unknown shipping strategy")))
		})
	})

	Describe("wait", func() {
		It("should succeed once every service is healthy", func() {
			// Given
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/health" {
					w.WriteHeader(http.StatusOK)
					return
				}
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			// When
			out, err := run("wait", "--log-level", "error",
				"--auth-url", srv.URL,
				"--catalog-url", srv.URL,
				"--chat-url", srv.URL,
				"--matchmaking-url", srv.URL,
				"--notifications-url", srv.URL,
				"--max-attempts", "1",
			)

			// Then
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Auth service is healthy"))
			Expect(out).To(ContainSubstring("Notifications service is healthy"))
		})

		It("should fail naming the service that never became healthy", func() {
			healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer healthy.Close()
			down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer down.Close()

			_, err := run("wait", "--log-level", "error",
				"--auth-url", healthy.URL,
				"--catalog-url", healthy.URL,
				"--chat-url", down.URL,
				"--matchmaking-url", healthy.URL,
				"--notifications-url", healthy.URL,
				"--max-attempts", "2",
				"--interval", "10ms",
			)

			Expect(err).To(MatchError(ContainSubstring("Chat service failed to become healthy after 2 attempts")))
		})
	})

	It("should refuse an invalid configuration before running", func() {
		_, err := run("wait", "--log-format", "xml")
		Expect(err).To(MatchError(ContainSubstring("invalid log format")))
	})
})

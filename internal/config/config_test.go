package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/swappo/swappo-toolkit/internal/config"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should apply documented defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Services.AuthURL).To(Equal("http://localhost:8001"))
			Expect(cfg.Services.NotificationsURL).To(Equal("http://localhost:8005"))
			Expect(cfg.Readiness.MaxAttempts).To(Equal(30))
			Expect(cfg.Readiness.Interval).To(Equal(time.Second))
			Expect(cfg.Readiness.ProbeTimeout).To(Equal(2 * time.Second))
			Expect(cfg.Shipping.Strategy).To(Equal(config.ShippingStrategyFormula))
			Expect(cfg.Shipping.EasyshipTimeout).To(Equal(10 * time.Second))
			Expect(cfg.Catalog.GRPCAddr).To(Equal("localhost:50051"))
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithLogLevel("info"),
				config.WithShipping(config.Shipping{Strategy: config.ShippingStrategyEasyship, EasyshipURL: "https://rates.example.com"}),
			)

			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Shipping.Strategy).To(Equal(config.ShippingStrategyEasyship))
			Expect(cfg.Readiness.MaxAttempts).To(Equal(30))
		})

		It("should round trip a section through ToOption", func() {
			src := config.NewShippingWithOptions(config.WithStrategy(config.ShippingStrategyEasyship), config.WithEasyshipTimeout(3*time.Second))
			dst := config.NewShippingWithOptionsAndDefaults(src.ToOption())

			Expect(dst.Strategy).To(Equal(config.ShippingStrategyEasyship))
			Expect(dst.EasyshipTimeout).To(Equal(3 * time.Second))
		})
	})

	Context("Endpoints", func() {
		It("should list the five services in polling order", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			names := []string{}
			for _, e := range cfg.Endpoints() {
				names = append(names, e.Name)
			}
			Expect(names).To(Equal([]string{"Auth", "Catalog", "Chat", "Matchmaking", "Notifications"}))
		})
	})

	Context("Validate", func() {
		It("should reject an unknown shipping strategy", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Shipping.Strategy = "carrier-pigeon"

			Expect(cfg.Validate()).To(MatchError(ContainSubstring("invalid shipping strategy")))
		})

		It("should reject a service url without scheme", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Services.ChatURL = "localhost:8003"

			Expect(cfg.Validate()).To(MatchError(ContainSubstring("Chat service url")))
		})

		It("should reject a zero retry budget", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Readiness.MaxAttempts = 0

			Expect(cfg.Validate()).To(HaveOccurred())
		})
	})

	Context("DebugMap", func() {
		It("should mask the easyship token", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			cfg.Shipping.EasyshipToken = "sand_secret"

			debug := cfg.Shipping.DebugMap()
			Expect(debug).To(HaveKey("EasyshipToken"))
			Expect(debug["EasyshipToken"]).NotTo(Equal("sand_secret"))
			Expect(debug).To(HaveKey("EasyshipURL"))
		})

		It("should list every top level field", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.DebugMap()).To(HaveKey("LogFormat"))
			Expect(cfg.DebugMap()).To(HaveKey("Shipping"))
			Expect(cfg.Catalog.DebugMap()).To(HaveKey("RPCTimeout"))
		})
	})

	Context("Load", func() {
		var v *viper.Viper

		BeforeEach(func() {
			v = viper.New()
			Expect(config.BindEnv(v)).To(Succeed())
		})

		It("should keep defaults when nothing is set", func() {
			cfg, err := config.Load(v)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Services.CatalogURL).To(Equal("http://localhost:8002"))
		})

		It("should read service urls from the environment", func() {
			Expect(os.Setenv("CATALOG_SERVICE_URL", "http://catalog:9000")).To(Succeed())
			DeferCleanup(os.Unsetenv, "CATALOG_SERVICE_URL")
			Expect(os.Setenv("PORT", "9090")).To(Succeed())
			DeferCleanup(os.Unsetenv, "PORT")

			cfg, err := config.Load(v)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Services.CatalogURL).To(Equal("http://catalog:9000"))
			Expect(cfg.Services.AuthURL).To(Equal("http://localhost:8001"))
			Expect(cfg.Server.HTTPPort).To(Equal(9090))
		})

		It("should decode durations and counts set on viper", func() {
			v.Set("readiness.max_attempts", 3)
			v.Set("readiness.interval", "10ms")

			cfg, err := config.Load(v)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Readiness.MaxAttempts).To(Equal(3))
			Expect(cfg.Readiness.Interval).To(Equal(10 * time.Millisecond))
		})

		It("should fail on an invalid value", func() {
			v.Set("shipping.strategy", "nope")

			_, err := config.Load(v)

			Expect(err).To(MatchError(ContainSubstring("invalid configuration")))
		})
	})
})

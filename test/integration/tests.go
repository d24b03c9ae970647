package main

import (
	"context"
	"net/http"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/models"
	"github.com/swappo/swappo-toolkit/internal/verifier"
)

var suiteVerifier *verifier.Verifier

var allServices = []string{
	verifier.ServiceAuth,
	verifier.ServiceCatalog,
	verifier.ServiceChat,
	verifier.ServiceMatchmaking,
	verifier.ServiceNotifications,
}

// specContext bounds every request made by a spec.
func specContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.RequestTimeout)
}

var _ = BeforeSuite(func() {
	Expect(infraManager.Start()).To(Succeed())
	endpoints := infraManager.Endpoints()

	// Readiness failure fails BeforeSuite, which skips every spec.
	opts := verifier.DefaultReadinessOptions()
	opts.MaxAttempts = cfg.MaxAttempts
	opts.Interval = cfg.Interval
	opts.ProbeTimeout = toolkitCfg.Readiness.ProbeTimeout
	opts.Progress = os.Stdout
	Expect(verifier.WaitForServices(context.Background(), endpoints, opts)).To(Succeed())

	v, err := verifier.New(endpoints, verifier.Options{
		HTTPClient:   &http.Client{Timeout: cfg.RequestTimeout},
		SmokeTimeout: toolkitCfg.Readiness.SmokeTimeout,
	})
	Expect(err).NotTo(HaveOccurred())
	suiteVerifier = v
})

var _ = AfterSuite(func() {
	if infraManager != nil {
		if err := infraManager.Stop(); err != nil {
			zap.S().Warnw("failed to stop infrastructure", "error", err)
		}
	}
})

var _ = Describe("Service health", func() {
	for _, name := range allServices {
		It(name+" service should report healthy", func() {
			ctx, cancel := specContext()
			defer cancel()

			Expect(suiteVerifier.CheckHealth(ctx, name)).To(Succeed())
		})
	}
})

var _ = Describe("User registration flow", Ordered, func() {
	var token models.Token

	It("should register a user or accept an existing one", func() {
		ctx, cancel := specContext()
		defer cancel()

		Expect(suiteVerifier.Register(ctx, verifier.DefaultCredential)).To(Succeed())
	})

	It("should accept a second registration of the same user", func() {
		ctx, cancel := specContext()
		defer cancel()

		Expect(suiteVerifier.Register(ctx, verifier.DefaultCredential)).To(Succeed())
	})

	It("should log in and receive a token", func() {
		ctx, cancel := specContext()
		defer cancel()

		var err error
		token, err = suiteVerifier.Login(ctx, verifier.DefaultCredential)
		Expect(err).NotTo(HaveOccurred())
		Expect(token.String()).NotTo(BeEmpty())
	})
})

var _ = Describe("Service communication", Ordered, func() {
	var token models.Token

	BeforeAll(func() {
		ctx, cancel := specContext()
		defer cancel()

		var err error
		token, err = suiteVerifier.Authenticate(ctx, verifier.IntegrationCredential)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should enforce authorization on the catalog", func() {
		ctx, cancel := specContext()
		defer cancel()

		Expect(suiteVerifier.CheckAuthorization(ctx, token)).To(Succeed())
	})
})

var _ = Describe("End-to-end workflow", Ordered, func() {
	var (
		cred  models.Credential
		token models.Token
	)

	BeforeAll(func() {
		cred = verifier.NewE2ECredential(time.Now())
	})

	It("should register a fresh user", func() {
		ctx, cancel := specContext()
		defer cancel()

		Expect(suiteVerifier.Register(ctx, cred)).To(Succeed())
	})

	It("should log in the fresh user", func() {
		ctx, cancel := specContext()
		defer cancel()

		var err error
		token, err = suiteVerifier.Login(ctx, cred)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should create an item and read matches and notifications", func() {
		ctx, cancel := specContext()
		defer cancel()

		Expect(suiteVerifier.RunWorkflow(ctx, token)).To(Succeed())
	})
})

var _ = Describe("Smoke", func() {
	for _, name := range allServices {
		It(name+" service should respond", func() {
			code, err := suiteVerifier.Respond(context.Background(), name)
			Expect(err).NotTo(HaveOccurred())
			GinkgoWriter.Printf("%s responded with %d\n", name, code)
		})
	}
})

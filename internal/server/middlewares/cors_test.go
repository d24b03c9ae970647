package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/swappo/swappo-toolkit/internal/server/middlewares"
)

var _ = Describe("CORS", func() {
	var (
		engine *gin.Engine
		called bool
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		called = false
		engine = gin.New()
		engine.Use(middlewares.CORS(middlewares.DefaultCORSOptions()))
		engine.Any("/", func(c *gin.Context) {
			called = true
			c.Status(http.StatusOK)
		})
	})

	It("should answer preflight requests without calling the handler", func() {
		// Act
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

		// Assert
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(rec.Body.Len()).To(BeZero())
		Expect(called).To(BeFalse())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(rec.Header().Get("Access-Control-Allow-Methods")).To(Equal("POST, GET, OPTIONS"))
		Expect(rec.Header().Get("Access-Control-Allow-Headers")).To(Equal("Content-Type"))
		Expect(rec.Header().Get("Access-Control-Max-Age")).To(Equal("3600"))
	})

	It("should only set the origin on other methods", func() {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(called).To(BeTrue())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		Expect(rec.Header().Get("Access-Control-Max-Age")).To(BeEmpty())
	})
})

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swappo/swappo-toolkit/internal/config"
	"github.com/swappo/swappo-toolkit/internal/metrics"
	"github.com/swappo/swappo-toolkit/internal/server/middlewares"
)

const (
	MetricsPath = "/metrics"
	modeProd    = "prod"

	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	srv *http.Server
}

// NewServer builds the gin engine. registerHandlerFn receives the root group,
// already wrapped by the logger, metrics, recovery and CORS middlewares.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server configuration is required")
	}

	if cfg.Server.ServerMode == modeProd {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.GET(MetricsPath, gin.WrapH(metrics.Handler()))

	router := engine.Group("/")
	router.Use(
		middlewares.Logger(),
		middlewares.Metrics(),
		ginzap.CustomRecoveryWithZap(zap.L(), true, recoverJSON),
		middlewares.CORS(middlewares.DefaultCORSOptions()),
	)
	registerHandlerFn(router)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// recoverJSON answers a recovered panic with the panic value as the error message.
func recoverJSON(c *gin.Context, r any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": fmt.Sprint(r)})
}

// Handler exposes the engine for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start blocks until the server stops. A graceful Stop returns http.ErrServerClosed.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("server").Infow("starting http server", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Stop waits for in-flight requests until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("server").Info("stopping http server")
	return s.srv.Shutdown(ctx)
}

// Package server provides the HTTP server that hosts the shipping function.
//
// The server uses the Gin web framework. It serves plain HTTP; TLS termination
// is left to whatever fronts the function.
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│  GET /metrics          prometheus registry (no middleware)    │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Logger   (request/response logging)                    │  │
//	│  │  Metrics  (swappo_http_requests_total)                  │  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  CORS     (Allow-Origin on every response, preflights)  │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                         Router (/)                            │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
// ServerMode "dev" runs Gin in debug mode, "prod" in release mode. Both serve
// the same routes.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, h)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests to complete.
//
// # Middleware
//
// Logger Middleware (middlewares.Logger):
//   - Logs request start at debug: method, path, query, IP, user-agent, timestamp
//   - Logs request end: all above + status code, latency
//   - Errors attached to the gin context are logged separately
//
// Recovery Middleware (ginzap.CustomRecoveryWithZap):
//   - Recovers from panics in handlers
//   - Logs panic details with stack trace through the logger installed before NewServer
//   - Returns 500 {"success":false,"error":"<panic value>"}
//
// CORS Middleware (middlewares.CORS):
//   - Sets Access-Control-Allow-Origin: * on every response
//   - OPTIONS → 204 with Allow-Methods "POST, GET, OPTIONS",
//     Allow-Headers "Content-Type", Max-Age 3600
package server

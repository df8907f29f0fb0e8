// Package server exposes prompt generation over HTTP.
//
// The API is stateless: each request carries everything needed to build one
// prompt. Routes are registered on a gin engine with CORS, request logging
// and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server timeouts. writeTimeout is the budget for writing a response once
// the configured delay has elapsed.
const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// maxBodyBytes bounds request bodies; prompts are small documents.
const maxBodyBytes = 1 << 20

// defaultOrigins are allowed when Config.AllowOrigins is empty.
var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Delay is an artificial latency applied before each generation,
	// simulating the latency of a remote generator. Zero disables it.
	Delay time.Duration

	// AllowOrigins lists the CORS origins allowed to call the API.
	AllowOrigins []string

	// Logger receives request logs. Nil means no logging.
	Logger *zap.Logger
}

// Server is the HTTP API.
type Server struct {
	cfg    Config
	log    *zap.Logger
	engine *gin.Engine
}

// New creates a server with all routes registered.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(log))
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = defaultOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", HeaderRequestID}
	corsConfig.ExposeHeaders = []string{HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	s := &Server{cfg: cfg, log: log, engine: engine}
	s.routes()
	return s
}

// routes registers every endpoint.
func (s *Server) routes() {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	s.engine.GET("/health", health)
	s.engine.HEAD("/health", health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.POST("/prompts", s.handleGenerate)
	api.POST("/prompts/:kind", s.handleGenerateKind)
	api.GET("/templates", s.handleListTemplates)
	api.GET("/templates/:name", s.handleGetTemplate)
	api.POST("/templates/:name", s.handleFillTemplate)
	api.GET("/forms/:kind", s.handleGetForm)
	api.GET("/kinds", s.handleListKinds)
	api.GET("/tools", s.handleListTools)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on Config.Addr and serves until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: s.writeDeadline(),
		IdleTimeout:  idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("Starting HTTP server",
			zap.String("addr", ln.Addr().String()),
			zap.Duration("delay", s.cfg.Delay))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// writeDeadline is the write timeout extended by the delay so delayed responses
// are not cut off.
func (s *Server) writeDeadline() time.Duration {
	return writeTimeout + max(s.cfg.Delay, 0)
}

// wait applies the configured artificial delay, returning early if ctx ends.
func (s *Server) wait(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

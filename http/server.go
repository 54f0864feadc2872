package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mortgage-simulator/pkg/log"
	"mortgage-simulator/pkg/response"
)

const ServiceName = "mortgage-simulator"

// Server holds all dependencies for the HTTP server.
type Server struct {
	l       log.Logger
	engine  *gin.Engine
	port    int
	limiter *RateLimiter

	mortgageHandler *MortgageHandler
	scenarioHandler *ScenarioHandler
}

// ServerConfig is the dependency bag passed to NewServer.
type ServerConfig struct {
	Port int
	Mode string

	RateLimiter     *RateLimiter
	MortgageHandler *MortgageHandler
	ScenarioHandler *ScenarioHandler
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(l log.Logger, cfg ServerConfig) (*Server, error) {
	gin.SetMode(cfg.Mode)

	srv := &Server{
		l:               l,
		engine:          gin.New(),
		port:            cfg.Port,
		limiter:         cfg.RateLimiter,
		mortgageHandler: cfg.MortgageHandler,
		scenarioHandler: cfg.ScenarioHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapRoutes()
	return srv, nil
}

func (s *Server) validate() error {
	if s.l == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.mortgageHandler == nil {
		return errors.New("mortgage handler is required")
	}
	if s.scenarioHandler == nil {
		return errors.New("scenario handler is required")
	}
	return nil
}

func (s *Server) mapRoutes() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(MetricsMiddleware())

	s.engine.GET("/health", s.healthCheck)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api/v1")
	if s.limiter != nil {
		api.Use(RateLimitMiddleware(s.limiter))
	}

	mortgage := api.Group("/mortgage")
	mortgage.POST("/calculate", s.mortgageHandler.Calculate)
	mortgage.POST("/schedule", s.mortgageHandler.Schedule)
	mortgage.GET("/history", s.mortgageHandler.History)

	scenario := api.Group("/scenario")
	scenario.POST("/simulate", s.scenarioHandler.Simulate)
	scenario.POST("/sweep", s.scenarioHandler.Sweep)
}

func (s *Server) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the server and blocks until a shutdown signal arrives or the
// server fails.
func (s *Server) Run() error {
	ctx := context.Background()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.l.Infof(ctx, "listening on http://localhost:%d", s.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		s.l.Info(ctx, "shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.l.Info(ctx, "server exited")
	return nil
}

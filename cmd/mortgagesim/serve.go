package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mortgage-simulator/config"
	httpLayer "mortgage-simulator/http"
	"mortgage-simulator/pkg/log"
	"mortgage-simulator/repository"
	"mortgage-simulator/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()
	logger.Infof(ctx, "starting %s (%s)", httpLayer.ServiceName, cfg.Environment)

	cache, err := buildCache(ctx, cfg, logger)
	if err != nil {
		return err
	}

	calcRepo := repository.NewCalculationRepositoryMemory()
	mortgageService := service.NewMortgageService(logger, calcRepo, cache)
	scenarioService := service.NewScenarioService(logger, mortgageService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	server, err := httpLayer.NewServer(logger, httpLayer.ServerConfig{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		RateLimiter:     rateLimiter,
		MortgageHandler: httpLayer.NewMortgageHandler(logger, mortgageService),
		ScenarioHandler: httpLayer.NewScenarioHandler(logger, scenarioService),
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	return server.Run()
}

// buildCache picks Redis when configured and reachable, otherwise the
// in-process LRU.
func buildCache(ctx context.Context, cfg *config.Config, logger log.Logger) (repository.CacheRepository, error) {
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.TTL)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warnf(ctx, "redis unavailable at %s, falling back to LRU cache: %v", cfg.Redis.Addr, err)
		} else {
			logger.Infof(ctx, "using redis cache at %s", cfg.Redis.Addr)
			return redisCache, nil
		}
	}

	lruCache, err := repository.NewLRUCache(cfg.Cache.LRUSize)
	if err != nil {
		return nil, fmt.Errorf("init lru cache: %w", err)
	}
	return lruCache, nil
}

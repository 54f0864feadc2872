package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment string

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level    string
	Mode     string
	Encoding string
}

// RedisConfig configures the calculation result cache. An empty Addr
// disables Redis and falls back to the in-process LRU cache.
type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

type CacheConfig struct {
	LRUSize int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/mortgage-simulator/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mortgage-simulator/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment = viper.GetString("environment")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.TTL = viper.GetDuration("redis.ttl")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	cfg.Cache.LRUSize = viper.GetInt("cache.lru_size")
	cfg.RateLimit.Requests = viper.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.ttl", 24*time.Hour)
	viper.SetDefault("cache.lru_size", 1024)
	viper.SetDefault("rate_limit.requests", 5)
	viper.SetDefault("rate_limit.window", time.Minute)
}

package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Environment is set from the value given to Load, not from the TOML file
	Environment string

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	PrometheusMetricsPort string `toml:"prom_metrics_port"`
	// abuse protection for the public endpoints
	LoginRateLimitAllowedPerMin   int `toml:"login_rate_limit_per_min"`
	ContactRateLimitAllowedPerMin int `toml:"contact_rate_limit_per_min"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

type Toml struct {
	Development *Config
	Production  *Config
}

func Load(env, path string) (*Config, error) {
	var tomlFile Toml
	if _, err := toml.DecodeFile(path, &tomlFile); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlFile.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	return cfg, nil
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development != nil {
			t.Development.Environment = "development"
		}
		return t.Development, nil
	case "prod", "production":
		if t.Production != nil {
			t.Production.Environment = "production"
		}
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

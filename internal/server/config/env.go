package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the Config fields that can come from the environment.
type envConfig struct {
	EndpointAddr         string   `env:"ADDRESS"`
	DatabaseDSN          string   `env:"DATABASE_DSN"`
	SecretKey            string   `env:"SECRET_KEY"`
	TokenValidityMinutes int      `env:"TOKEN_VALIDITY_MINUTES"`
	AllowedOrigins       []string `env:"ALLOWED_ORIGINS"`
}

// parseEnv overlays values from environment variables onto config. Unset
// variables leave the current values untouched.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if len(c.AllowedOrigins) != 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
}

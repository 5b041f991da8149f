package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		ServerAddress: "localhost:8080",
		BaseURL:       "http://localhost:8080",
		JWTSecret:     "test-secret",
		NotFoundURL:   "/404",
		ExpiredURL:    "/expired",
		ErrorURL:      "/error",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty server address", func(c *Config) { c.ServerAddress = "" }},
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"empty jwt secret", func(c *Config) { c.JWTSecret = "" }},
		{"empty not found url", func(c *Config) { c.NotFoundURL = "" }},
		{"empty expired url", func(c *Config) { c.ExpiredURL = "" }},
		{"empty error url", func(c *Config) { c.ErrorURL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

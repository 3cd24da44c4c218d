package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "snackcat", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, uint(2), cfg.Lookup.Retries)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("LOOKUP_BASE_URL", " https://upc.example.com ")
	t.Setenv("LOOKUP_TIMEOUT", "250ms")
	t.Setenv("DATABASE_MAX_OPEN_CONN", "25")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "https://upc.example.com", cfg.Lookup.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Lookup.Timeout)
	assert.Equal(t, 25, cfg.DBMaxOpenConn)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DATABASE_MAX_OPEN_CONN", "lots")
	t.Setenv("LOOKUP_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10, cfg.DBMaxOpenConn)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
}

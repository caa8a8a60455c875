package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "DATABASE_URL", "MAX_PAGE_SIZE", "DEFAULT_PAGE_SIZE",
		"AGGREGATE_CONCURRENCY", "QUERY_TIMEOUT", "PROFANITY_FILTER_ENABLED", "PROFANITY_WORDS",
		"CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, 1, cfg.AggregateConcurrency)
	assert.Equal(t, 30*time.Second, cfg.QueryTimeout)
	assert.False(t, cfg.ProfanityFilterEnabled)
	assert.Empty(t, cfg.ProfanityWords)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MAX_PAGE_SIZE", "25")
	t.Setenv("QUERY_TIMEOUT", "5s")
	t.Setenv("AGGREGATE_CONCURRENCY", "4")
	t.Setenv("PROFANITY_FILTER_ENABLED", "true")
	t.Setenv("PROFANITY_WORDS", " darn , heck,,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 25, cfg.MaxPageSize)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 4, cfg.AggregateConcurrency)
	assert.True(t, cfg.ProfanityFilterEnabled)
	assert.Equal(t, []string{"darn", "heck"}, cfg.ProfanityWords)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "lots")
	t.Setenv("DB_MAX_OPEN_CONNS", "-3")
	t.Setenv("QUERY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 50, cfg.MaxPageSize)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.QueryTimeout)
}

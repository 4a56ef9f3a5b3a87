package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientConfigDefaults(t *testing.T) {
	cfg := ClientConfig()

	assert.Equal(t, "https://api-dev.blaaiz.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, 10*time.Second, cfg.RetryBackoffCap)
	assert.Equal(t, 4, cfg.UploadConcurrency)
	assert.Equal(t, "development", cfg.Environment)
}

func TestClientConfigFromEnvironment(t *testing.T) {
	t.Setenv("BLAAIZ_API_KEY", "env-key")
	t.Setenv("BLAAIZ_BASE_URL", "https://api.blaaiz.com/")
	t.Setenv("BLAAIZ_TIMEOUT", "10")
	t.Setenv("BLAAIZ_MAX_RETRIES", "5")
	t.Setenv("BLAAIZ_RETRY_BACKOFF_MS", "250")
	t.Setenv("BLAAIZ_UPLOAD_CONCURRENCY", "8")
	t.Setenv("BLAAIZ_ENVIRONMENT", "production")

	cfg := ClientConfig()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://api.blaaiz.com", cfg.BaseURL, "trailing slash should be trimmed")
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, 8, cfg.UploadConcurrency)
	assert.Equal(t, "production", cfg.Environment)
}

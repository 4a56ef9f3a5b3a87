package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ClientConfiguration holds every tunable of a Blaaiz client instance.
// It is assembled once and treated as immutable after the client is built.
type ClientConfiguration struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
	RetryBackoffCap   time.Duration
	UploadConcurrency int
	Environment       string
	SentryDSN         string
}

// ClientConfig builds a configuration from environment variables, falling
// back to the SDK defaults. The API key deliberately has no default; it must
// come from BLAAIZ_API_KEY or be set by the caller.
func ClientConfig() *ClientConfiguration {
	viper.SetDefault("BLAAIZ_BASE_URL", "https://api-dev.blaaiz.com")
	viper.SetDefault("BLAAIZ_TIMEOUT", 30)
	viper.SetDefault("BLAAIZ_MAX_RETRIES", 3)
	viper.SetDefault("BLAAIZ_RETRY_BACKOFF_MS", 500)
	viper.SetDefault("BLAAIZ_RETRY_BACKOFF_CAP_MS", 10000)
	viper.SetDefault("BLAAIZ_UPLOAD_CONCURRENCY", 4)
	viper.SetDefault("BLAAIZ_ENVIRONMENT", "development")

	viper.AutomaticEnv()

	return &ClientConfiguration{
		APIKey:            viper.GetString("BLAAIZ_API_KEY"),
		BaseURL:           strings.TrimRight(viper.GetString("BLAAIZ_BASE_URL"), "/"),
		Timeout:           time.Duration(viper.GetInt("BLAAIZ_TIMEOUT")) * time.Second,
		MaxRetries:        viper.GetInt("BLAAIZ_MAX_RETRIES"),
		RetryBackoff:      time.Duration(viper.GetInt("BLAAIZ_RETRY_BACKOFF_MS")) * time.Millisecond,
		RetryBackoffCap:   time.Duration(viper.GetInt("BLAAIZ_RETRY_BACKOFF_CAP_MS")) * time.Millisecond,
		UploadConcurrency: viper.GetInt("BLAAIZ_UPLOAD_CONCURRENCY"),
		Environment:       viper.GetString("BLAAIZ_ENVIRONMENT"),
		SentryDSN:         viper.GetString("BLAAIZ_SENTRY_DSN"),
	}
}

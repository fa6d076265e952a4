package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MEDIA_BUCKET", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "MAX_UPLOAD_MB", "MEDIA_CACHE_CONTROL_SECONDS"} {
		t.Setenv(key, "")
	}
	cfg := NewConfig()

	// empty values are present but unparsable, so typed getters fall back
	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, []string{"https://scribe-space-frotend.vercel.app"}, cfg.GetAllowedOrigins())
	assert.Equal(t, float64(10), cfg.GetRateLimitRPS())
	assert.Equal(t, int64(10<<20), cfg.GetMaxUploadBytes())
	assert.Equal(t, time.Hour, cfg.GetMediaCacheControl())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("MEDIA_PUBLIC_BASE_URL", "https://cdn.example/")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, "https://cdn.example", cfg.MediaPublicBaseURL)
	assert.True(t, cfg.OtelEnabled)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "MONGODB_URI")
		assert.Contains(t, err.Error(), "MONGODB_DB_NAME")
		assert.Contains(t, err.Error(), "KRATOS_PUBLIC_URL")
	}

	cfg = &Config{MongoURI: "mongodb://localhost", MongoDBName: "scribe", KratosPublicURL: "http://kratos:4433"}
	assert.NoError(t, cfg.Validate())
}

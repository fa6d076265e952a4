package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/ScribeSpace/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	MongoURI     string
	MongoDBName  string
	MongoTimeout time.Duration

	MediaBucket        string
	MediaPublicBaseURL string
	MediaCacheControl  time.Duration
	MaxUploadBytes     int64

	KratosPublicURL string
	KratosTimeout   time.Duration

	RedisURL       string
	CacheDetailTTL time.Duration
	CacheListTTL   time.Duration

	AllowedOrigins []string
	RateLimitRPS   float64

	OtelEnabled     bool
	OtelServiceName string

	BcryptCost int
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:     getEnv("PORT", "6543"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MongoURI:     getEnv("MONGODB_URI", ""),
		MongoDBName:  getEnv("MONGODB_DB_NAME", ""),
		MongoTimeout: time.Second * time.Duration(getEnvAsInt("MONGODB_TIMEOUT_SECONDS", 10)),

		MediaBucket:        getEnv("MEDIA_BUCKET", "media"),
		MediaPublicBaseURL: strings.TrimRight(getEnv("MEDIA_PUBLIC_BASE_URL", "http://localhost:6543"), "/"),
		MediaCacheControl:  time.Second * time.Duration(getEnvAsInt("MEDIA_CACHE_CONTROL_SECONDS", 3600)),
		MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,

		KratosPublicURL: getEnv("KRATOS_PUBLIC_URL", ""),
		KratosTimeout:   time.Second * time.Duration(getEnvAsInt("KRATOS_TIMEOUT_SECONDS", 10)),

		RedisURL:       getEnv("REDIS_URL", ""),
		CacheDetailTTL: time.Second * time.Duration(getEnvAsInt("CACHE_DETAIL_TTL_SECONDS", 600)),
		CacheListTTL:   time.Second * time.Duration(getEnvAsInt("CACHE_LIST_TTL_SECONDS", 30)),

		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"https://scribe-space-frotend.vercel.app"}),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),

		OtelEnabled:     getEnvAsBool("OTEL_ENABLED", false),
		OtelServiceName: getEnv("OTEL_SERVICE_NAME", "scribespace-api"),

		BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
	}
}

// Validate reports the required settings that are missing.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI environment variable not set"))
	}
	if c.MongoDBName == "" {
		errs = append(errs, errors.New("MONGODB_DB_NAME environment variable not set"))
	}
	if c.KratosPublicURL == "" {
		errs = append(errs, errors.New("KRATOS_PUBLIC_URL environment variable not set"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetAllowedOrigins returns the CORS origins allowed to call the API.
func (c *Config) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetRateLimitRPS returns the per-client request rate limit.
func (c *Config) GetRateLimitRPS() float64 {
	return c.RateLimitRPS
}

// GetMaxUploadBytes returns the largest accepted multipart body.
func (c *Config) GetMaxUploadBytes() int64 {
	return c.MaxUploadBytes
}

// GetMediaCacheControl returns how long clients may cache served media.
func (c *Config) GetMediaCacheControl() time.Duration {
	return c.MediaCacheControl
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string, fallback []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

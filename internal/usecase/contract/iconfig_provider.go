package usecasecontract

import "time"

// IConfigProvider exposes the settings consumed outside of main.
type IConfigProvider interface {
	GetAllowedOrigins() []string
	GetRateLimitRPS() float64
	GetMaxUploadBytes() int64
	GetMediaCacheControl() time.Duration
}

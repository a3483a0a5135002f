package config

import (
	"strings"
	"time"
)

const (
	defaultRequestTimeoutMS = 10000
	defaultUploadTimeoutMS  = 60000
)

// APIConfig describes the backend API endpoint and the client-side
// request deadlines.
type APIConfig struct {
	// BaseURL is the backend API origin, e.g. "https://api.difakses.id/api/v1".
	BaseURL string `env:"DIFAKSES_API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`

	// TimeoutMS bounds ordinary CRUD calls, in milliseconds.
	TimeoutMS int `env:"DIFAKSES_API_TIMEOUT_MS" envDefault:"10000"`

	// UploadTimeoutMS bounds multipart and TTS calls, in milliseconds.
	// These proxy to inference services and routinely take tens of
	// seconds, so the limit is deliberately much higher than TimeoutMS.
	UploadTimeoutMS int `env:"DIFAKSES_UPLOAD_TIMEOUT_MS" envDefault:"60000"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.TimeoutMS <= 0 {
		a.TimeoutMS = defaultRequestTimeoutMS
	}
	if a.UploadTimeoutMS <= 0 {
		a.UploadTimeoutMS = defaultUploadTimeoutMS
	}
	// Uploads must never be cut shorter than ordinary calls.
	if a.UploadTimeoutMS < a.TimeoutMS {
		a.UploadTimeoutMS = a.TimeoutMS
	}
}

// Timeout returns the CRUD deadline as a duration.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// UploadTimeout returns the upload/inference deadline as a duration.
func (a *APIConfig) UploadTimeout() time.Duration {
	return time.Duration(a.UploadTimeoutMS) * time.Millisecond
}

package config

// AppConfig is the main configuration struct that composes domain-specific
// configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - api.go: backend API endpoint and timeouts
//   - tokenstore.go: durable token storage backend
type AppConfig struct {
	// IsDev enables verbose transport logging in the CLI.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Backend API configuration
	API APIConfig

	// Token storage configuration
	TokenStore TokenStoreConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.TokenStore.Sanitize()
}

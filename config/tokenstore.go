package config

import (
	"fmt"
	"strings"
)

// TokenStoreBackend selects where the client mirrors its access token.
type TokenStoreBackend string

const (
	TokenStoreMemory TokenStoreBackend = "memory"
	TokenStoreFile   TokenStoreBackend = "file"
	TokenStoreRedis  TokenStoreBackend = "redis"
)

// ParseTokenStoreBackend normalizes a backend name and reports whether it
// is supported.
func ParseTokenStoreBackend(value string) (TokenStoreBackend, error) {
	backend := TokenStoreBackend(strings.ToLower(strings.TrimSpace(value)))
	switch backend {
	case TokenStoreMemory, TokenStoreFile, TokenStoreRedis:
		return backend, nil
	default:
		return "", fmt.Errorf("unknown token store backend %q", value)
	}
}

// TokenStoreConfig describes the durable token mirror.
type TokenStoreConfig struct {
	// Backend is one of "memory", "file", "redis".
	Backend string `env:"DIFAKSES_TOKEN_STORE" envDefault:"memory"`

	// Key is the storage key the token lives under. Earlier client
	// versions used "token" and "access_token"; those are still cleared
	// on sign-out.
	Key string `env:"DIFAKSES_TOKEN_KEY" envDefault:"auth_token"`

	// FilePath is where the file backend keeps its JSON document.
	FilePath string `env:"DIFAKSES_TOKEN_FILE" envDefault:".difakses/tokens.json"`

	// Redis connection settings (redis backend only).
	Redis RedisConfig `envPrefix:"DIFAKSES_REDIS_"`
}

// Sanitize applies guardrails to token store configuration values.
func (t *TokenStoreConfig) Sanitize() {
	if backend, err := ParseTokenStoreBackend(t.Backend); err == nil {
		t.Backend = string(backend)
	} else {
		t.Backend = string(TokenStoreMemory)
	}
	t.Key = strings.TrimSpace(t.Key)
	if t.Key == "" {
		t.Key = "auth_token"
	}
	t.FilePath = strings.TrimSpace(t.FilePath)
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

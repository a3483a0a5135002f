package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/difakses/difakses-go/client"
	"github.com/difakses/difakses-go/config"
)

// NewClient assembles a gateway client from loaded configuration: the
// token store named by the config plus the timeouts of the API section.
func NewClient(cfg config.AppConfig, logger *slog.Logger) (*client.Client, error) {
	store, err := NewTokenStore(cfg.TokenStore, logger)
	if err != nil {
		return nil, fmt.Errorf("build token store: %w", err)
	}

	c, err := client.FromConfig(cfg.API, store, cfg.TokenStore.Key, logger)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}
	return c, nil
}

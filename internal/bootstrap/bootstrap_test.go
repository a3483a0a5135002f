package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/difakses/difakses-go/config"
	"github.com/difakses/difakses-go/tokenstore"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL == "" {
		t.Error("expected a default base URL")
	}
	if cfg.TokenStore.Backend != string(config.TokenStoreMemory) {
		t.Errorf("backend = %q, want memory", cfg.TokenStore.Backend)
	}
	if cfg.TokenStore.Key != "auth_token" {
		t.Errorf("token key = %q, want auth_token", cfg.TokenStore.Key)
	}
}

func TestLoadConfigReadsDotenv(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, ".env", "DIFAKSES_API_BASE_URL=https://api.difakses.id/api/v1\nDIFAKSES_TOKEN_STORE=file\n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "https://api.difakses.id/api/v1" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.TokenStore.Backend != string(config.TokenStoreFile) {
		t.Errorf("backend = %q, want file", cfg.TokenStore.Backend)
	}
}

func TestNewTokenStoreSelectsBackend(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.TokenStoreConfig
		want    any
		wantErr bool
	}{
		{
			name: "memory",
			cfg:  config.TokenStoreConfig{Backend: "memory"},
			want: &tokenstore.Memory{},
		},
		{
			name: "file",
			cfg:  config.TokenStoreConfig{Backend: "file", FilePath: filepath.Join(t.TempDir(), "tokens.json")},
			want: &tokenstore.File{},
		},
		{
			name:    "file without path",
			cfg:     config.TokenStoreConfig{Backend: "file"},
			wantErr: true,
		},
		{
			name:    "unknown",
			cfg:     config.TokenStoreConfig{Backend: "etcd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewTokenStore(tt.cfg, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTokenStore: %v", err)
			}
			switch tt.want.(type) {
			case *tokenstore.Memory:
				if _, ok := store.(*tokenstore.Memory); !ok {
					t.Errorf("got %T, want *tokenstore.Memory", store)
				}
			case *tokenstore.File:
				if _, ok := store.(*tokenstore.File); !ok {
					t.Errorf("got %T, want *tokenstore.File", store)
				}
			}
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := config.AppConfig{
		API: config.APIConfig{
			BaseURL:         "http://localhost:8080/api/v1",
			TimeoutMS:       10_000,
			UploadTimeoutMS: 60_000,
		},
		TokenStore: config.TokenStoreConfig{Backend: "memory", Key: "auth_token"},
	}
	c, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.HasToken() {
		t.Error("fresh client should hold no token")
	}
}

func writeFile(t *testing.T, name, body string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

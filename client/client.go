// Package client implements the gateway client for the Difakses backend
// API. All HTTP traffic from a consumer funnels through one Client: it
// owns the base URL, the request deadlines, the auth-token lifecycle,
// and the response-shape normalization that reconciles the backend's
// historically inconsistent field casing.
package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/difakses/difakses-go/config"
	"github.com/difakses/difakses-go/tokenstore"
)

// legacyTokenKeys are storage keys older client versions wrote the token
// under. Sign-out clears them alongside the configured key.
var legacyTokenKeys = []string{"token", "access_token"}

// Options configures a Client. BaseURL is required; everything else has
// a default.
type Options struct {
	// BaseURL is the backend API origin, e.g.
	// "https://api.difakses.id/api/v1". Required.
	BaseURL string

	// Timeout bounds ordinary CRUD calls. Defaults to 10 s.
	Timeout time.Duration

	// UploadTimeout bounds multipart and TTS calls, which proxy to
	// inference services. Defaults to 60 s.
	UploadTimeout time.Duration

	// HTTPClient overrides the underlying transport. Per-call deadlines
	// are enforced with contexts, not the http.Client timeout.
	HTTPClient *http.Client

	// TokenStore mirrors the access token durably. Defaults to an
	// in-memory store.
	TokenStore tokenstore.Store

	// TokenKey is the storage key the token lives under. Defaults to
	// "auth_token".
	TokenKey string

	// Logger receives debug-level transport logs. Defaults to
	// slog.Default(). The client never logs above debug.
	Logger *slog.Logger
}

// Client is the gateway to the Difakses backend. It is safe for
// concurrent use; the held token is the only shared mutable state and it
// is guarded by a lock. Construct one with New and reach operations
// through the namespace fields.
type Client struct {
	baseURL       string
	timeout       time.Duration
	uploadTimeout time.Duration
	http          *http.Client
	store         tokenstore.Store
	tokenKey      string
	logger        *slog.Logger

	mu    sync.RWMutex
	token string

	subMu   sync.Mutex
	subs    map[int]AuthStateFunc
	nextSub int

	// Endpoint namespaces.
	Auth          *AuthService
	Users         *UsersService
	Appointments  *AppointmentsService
	Forum         *ForumService
	Events        *EventsService
	Communities   *CommunitiesService
	Notifications *NotificationsService
	Locations     *LocationsService
	Contact       *ContactService
	Articles      *ArticlesService
	Resources     *ResourcesService
	Admin         *AdminService
	Isyarat       *IsyaratService
	Vision        *VisionService
}

// New builds a Client. A token previously saved in the store is adopted
// so sessions survive restarts.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = 60 * time.Second
	}
	if uploadTimeout < timeout {
		uploadTimeout = timeout
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	store := opts.TokenStore
	if store == nil {
		store = tokenstore.NewMemory()
	}

	tokenKey := strings.TrimSpace(opts.TokenKey)
	if tokenKey == "" {
		tokenKey = "auth_token"
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:       baseURL,
		timeout:       timeout,
		uploadTimeout: uploadTimeout,
		http:          hc,
		store:         store,
		tokenKey:      tokenKey,
		logger:        logger,
		subs:          make(map[int]AuthStateFunc),
	}

	// Adopt a previously mirrored token, if any. ErrNotFound is the
	// normal anonymous case; any other store failure starts anonymous
	// too rather than failing construction.
	if token, err := store.Load(context.Background(), tokenKey); err == nil && token != "" {
		c.token = token
	} else if err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
		logger.Debug("token store load failed, starting anonymous", "error", err)
	}

	c.Auth = &AuthService{c: c}
	c.Users = &UsersService{c: c}
	c.Appointments = &AppointmentsService{c: c}
	c.Forum = &ForumService{c: c}
	c.Events = &EventsService{c: c}
	c.Communities = &CommunitiesService{c: c}
	c.Notifications = &NotificationsService{c: c}
	c.Locations = &LocationsService{c: c}
	c.Contact = &ContactService{c: c}
	c.Articles = &ArticlesService{c: c}
	c.Resources = &ResourcesService{c: c}
	c.Admin = newAdminService(c)
	c.Isyarat = &IsyaratService{c: c}
	c.Vision = &VisionService{c: c}
	return c, nil
}

// FromConfig builds a Client from env-driven configuration plus a token
// store selected elsewhere (see bootstrap).
func FromConfig(cfg config.APIConfig, store tokenstore.Store, tokenKey string, logger *slog.Logger) (*Client, error) {
	return New(Options{
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.Timeout(),
		UploadTimeout: cfg.UploadTimeout(),
		TokenStore:    store,
		TokenKey:      tokenKey,
		Logger:        logger,
	})
}

// currentToken returns the held access token, or "" when anonymous.
func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// HasToken reports whether an access token is currently held.
func (c *Client) HasToken() bool {
	return c.currentToken() != ""
}

package client

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/difakses/difakses-go/model"
)

// AuthStateFunc receives auth-state change notifications. session is nil
// for SIGNED_OUT.
type AuthStateFunc func(state model.AuthState, session *model.Session)

// AuthService owns registration, login, session probing, sign-out, and
// the password-reset flow. The token transitions it drives are:
// anonymous -> authenticated on a successful Register/Login, and
// authenticated -> anonymous on SignOut or on any 401 seen by the
// transport layer.
type AuthService struct {
	c *Client
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) Response[model.Session] {
	return s.adopt(ctx, do[model.AuthTokens](ctx, s.c, http.MethodPost, "/auth/register", req))
}

// Login authenticates an existing account.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) Response[model.Session] {
	return s.adopt(ctx, do[model.AuthTokens](ctx, s.c, http.MethodPost, "/auth/login", req))
}

// adopt stores the returned access token and assembles the session.
func (s *AuthService) adopt(ctx context.Context, resp Response[model.AuthTokens]) Response[model.Session] {
	if resp.Failed() {
		return Response[model.Session]{Err: resp.Err, Status: resp.Status}
	}
	if resp.Data.AccessToken == "" {
		return Response[model.Session]{Err: "auth response missing access token", Status: resp.Status}
	}

	session := model.Session{
		User:        model.NormalizeUser(resp.Data.User),
		AccessToken: resp.Data.AccessToken,
		ExpiresAt:   tokenExpiry(resp.Data.AccessToken),
	}
	s.c.setToken(ctx, resp.Data.AccessToken)
	s.c.notify(model.AuthStateSignedIn, &session)
	return Response[model.Session]{Data: session, Status: resp.Status, Meta: resp.Meta}
}

// SignOut clears local auth state first, then tells the backend. Local
// state is guaranteed clean even when the network call fails or hangs;
// the captured token still rides along so the server can invalidate its
// side of the session.
func (s *AuthService) SignOut(ctx context.Context) Response[struct{}] {
	token := s.c.currentToken()
	s.c.clearAuthState(ctx)
	if token == "" {
		return Response[struct{}]{}
	}

	raw := s.c.roundTrip(ctx, rawRequest{
		method:      http.MethodPost,
		url:         s.c.baseURL + "/auth/logout",
		contentType: "application/json",
		timeout:     s.c.timeout,
		authToken:   token,
	})
	if raw.errText != "" {
		return Response[struct{}]{Err: raw.errText, Status: raw.status}
	}
	return Response[struct{}]{Status: raw.status}
}

// Session probes the current session. When no token is held it resolves
// to no session (nil Data) without a network call. When the identity
// endpoint errors or answers with an empty identity, the token is treated
// as dead and cleared, and the probe again reports no session rather
// than an error.
func (s *AuthService) Session(ctx context.Context) Response[*model.Session] {
	token := s.c.currentToken()
	if token == "" {
		return Response[*model.Session]{}
	}

	resp := do[map[string]any](ctx, s.c, http.MethodGet, "/me", nil)
	if resp.Failed() {
		// A 401 already cleared the token inside the transport; any
		// other failure invalidates it here.
		s.c.invalidateToken(ctx)
		s.c.logger.Debug("session probe failed", "error", resp.Err)
		return Response[*model.Session]{Status: resp.Status}
	}

	user := model.NormalizeUser(resp.Data)
	if user.ID == "" && user.Email == "" {
		s.c.invalidateToken(ctx)
		return Response[*model.Session]{Status: resp.Status}
	}

	return Response[*model.Session]{
		Data: &model.Session{
			User:        user,
			AccessToken: token,
			ExpiresAt:   tokenExpiry(token),
		},
		Status: resp.Status,
	}
}

// OnAuthStateChange subscribes to sign-in/sign-out transitions. The
// current state is replayed immediately on subscribe: SIGNED_IN with a
// token-only session when a token is held (call Session for the full
// identity), SIGNED_OUT otherwise. The returned function unsubscribes.
func (s *AuthService) OnAuthStateChange(fn AuthStateFunc) func() {
	c := s.c
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	if token := c.currentToken(); token != "" {
		fn(model.AuthStateSignedIn, &model.Session{
			AccessToken: token,
			ExpiresAt:   tokenExpiry(token),
		})
	} else {
		fn(model.AuthStateSignedOut, nil)
	}

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// RequestPasswordReset starts the reset flow for an email address.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) Response[model.PasswordResetOutcome] {
	body := map[string]string{"email": email}
	return do[model.PasswordResetOutcome](ctx, s.c, http.MethodPost, "/auth/password/reset-request", body)
}

// ValidateResetToken checks whether a reset token is still usable.
func (s *AuthService) ValidateResetToken(ctx context.Context, token string) Response[model.TokenValidity] {
	body := map[string]string{"token": token}
	return do[model.TokenValidity](ctx, s.c, http.MethodPost, "/auth/password/validate-token", body)
}

// ResetPassword finalizes the reset flow.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) Response[model.PasswordResetOutcome] {
	body := map[string]string{"token": token, "new_password": newPassword}
	return do[model.PasswordResetOutcome](ctx, s.c, http.MethodPost, "/auth/password/reset", body)
}

// tokenExpiry decodes the exp claim from a JWT access token without
// verifying the signature (the client has no key material; the value is
// informational only). Opaque tokens yield the zero time.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// setToken adopts a fresh token in memory and mirrors it to the store.
func (c *Client) setToken(ctx context.Context, token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if err := c.store.Save(ctx, c.tokenKey, token); err != nil {
		c.logger.Debug("token store save failed", "error", err)
	}
}

// invalidateToken drops a rejected token (401 path). No-op when already
// anonymous, so overlapping 401s notify subscribers once.
func (c *Client) invalidateToken(ctx context.Context) {
	c.mu.Lock()
	held := c.token != ""
	c.token = ""
	c.mu.Unlock()
	if !held {
		return
	}

	if err := c.store.Clear(ctx, c.tokenKey); err != nil {
		c.logger.Debug("token store clear failed", "error", err)
	}
	c.notify(model.AuthStateSignedOut, nil)
}

// clearAuthState wipes memory and every known storage key, including
// legacy key names from earlier client versions.
func (c *Client) clearAuthState(ctx context.Context) {
	c.mu.Lock()
	held := c.token != ""
	c.token = ""
	c.mu.Unlock()

	keys := append([]string{c.tokenKey}, legacyTokenKeys...)
	if err := c.store.Clear(ctx, keys...); err != nil {
		c.logger.Debug("token store clear failed", "error", err)
	}
	if held {
		c.notify(model.AuthStateSignedOut, nil)
	}
}

// notify fans an auth-state change out to subscribers, synchronously and
// outside the token lock.
func (c *Client) notify(state model.AuthState, session *model.Session) {
	c.subMu.Lock()
	fns := make([]AuthStateFunc, 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(state, session)
	}
}

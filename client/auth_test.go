package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/difakses/difakses-go/internal/mocks"
	"github.com/difakses/difakses-go/model"
)

// authBackend is a minimal fake of the auth endpoints.
type authBackend struct {
	token     string
	userShape map[string]any
	meCalls   atomic.Int32
	logout    atomic.Int32
}

func (b *authBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "rahasia" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"access_token":  b.token,
				"refresh_token": "refresh-1",
				"user":          b.userShape,
			},
		})
	})
	mux.HandleFunc("GET /me", func(w http.ResponseWriter, r *http.Request) {
		b.meCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": b.userShape})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		b.logout.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestLoginThenSession(t *testing.T) {
	t.Parallel()
	backend := &authBackend{
		token: "tok-login",
		userShape: map[string]any{
			"ID":    "u-1",
			"Email": "ayu@difakses.id",
			"Profile": map[string]any{
				"FullName": "Ayu",
			},
		},
	}
	c, store := newTestClient(t, backend.handler())
	ctx := context.Background()

	login := c.Auth.Login(ctx, model.LoginRequest{Email: "ayu@difakses.id", Password: "rahasia"})
	require.False(t, login.Failed())
	assert.Equal(t, "ayu@difakses.id", login.Data.User.Email)
	assert.Equal(t, "Ayu", login.Data.User.FullName)

	// The token is mirrored durably.
	stored, err := store.Load(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-login", stored)

	session := c.Auth.Session(ctx)
	require.False(t, session.Failed())
	require.NotNil(t, session.Data)
	assert.Equal(t, "ayu@difakses.id", session.Data.User.Email)
	assert.Equal(t, "tok-login", session.Data.AccessToken)
}

func TestLoginFailureStaysAnonymous(t *testing.T) {
	t.Parallel()
	backend := &authBackend{token: "tok", userShape: map[string]any{"id": "u", "email": "e@x.id"}}
	c, _ := newTestClient(t, backend.handler())

	resp := c.Auth.Login(context.Background(), model.LoginRequest{Email: "e@x.id", Password: "salah"})
	assert.True(t, resp.Failed())
	assert.Equal(t, "invalid credentials", resp.Err)
	assert.False(t, c.HasToken())
}

func TestSessionWithoutTokenSkipsNetwork(t *testing.T) {
	t.Parallel()
	backend := &authBackend{token: "tok", userShape: map[string]any{"id": "u", "email": "e@x.id"}}
	c, _ := newTestClient(t, backend.handler())

	resp := c.Auth.Session(context.Background())
	assert.False(t, resp.Failed())
	assert.Nil(t, resp.Data)
	assert.Equal(t, int32(0), backend.meCalls.Load())
}

func TestUnauthorizedThenSessionSkipsNetwork(t *testing.T) {
	t.Parallel()
	backend := &authBackend{token: "tok-valid", userShape: map[string]any{"id": "u", "email": "e@x.id"}}
	c, _ := newTestClient(t, backend.handler())
	ctx := context.Background()

	// Hold a token the backend rejects.
	c.setToken(ctx, "tok-stale")
	probe := c.Auth.Session(ctx)
	assert.Nil(t, probe.Data)
	assert.False(t, c.HasToken())
	require.Equal(t, int32(1), backend.meCalls.Load())

	// The follow-up probe answers locally: no further identity call.
	again := c.Auth.Session(ctx)
	assert.Nil(t, again.Data)
	assert.Equal(t, int32(1), backend.meCalls.Load())
}

func TestSessionEmptyIdentityInvalidates(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	ctx := context.Background()
	c.setToken(ctx, "tok")

	resp := c.Auth.Session(ctx)
	assert.False(t, resp.Failed())
	assert.Nil(t, resp.Data)
	assert.False(t, c.HasToken())
}

func TestSignOutClearsStateEvenWhenLogoutFails(t *testing.T) {
	t.Parallel()
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	c.timeout = 20 * time.Millisecond
	ctx := context.Background()
	c.setToken(ctx, "tok-signout")

	resp := c.Auth.SignOut(ctx)
	assert.Equal(t, errRequestTimeout, resp.Err)

	assert.False(t, c.HasToken())
	_, err := store.Load(ctx, "auth_token")
	assert.Error(t, err)
}

func TestSignOutCarriesTokenToBackend(t *testing.T) {
	t.Parallel()
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	ctx := context.Background()
	c.setToken(ctx, "tok-bye")

	resp := c.Auth.SignOut(ctx)
	assert.False(t, resp.Failed())
	assert.Equal(t, "Bearer tok-bye", gotAuth)
}

func TestSignOutClearsLegacyKeys(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := mocks.NewMockStore(ctrl)

	store.EXPECT().Load(gomock.Any(), "auth_token").Return("tok", nil)
	store.EXPECT().Clear(gomock.Any(), "auth_token", "token", "access_token").Return(nil)

	c, err := New(Options{BaseURL: "http://127.0.0.1:1", TokenStore: store})
	require.NoError(t, err)

	// The logout network call fails (nothing listens on port 1); local
	// clearing already happened through the expectation above.
	resp := c.Auth.SignOut(context.Background())
	assert.True(t, resp.Failed())
	assert.False(t, c.HasToken())
}

func TestOnAuthStateChangeReplayAndEvents(t *testing.T) {
	t.Parallel()
	backend := &authBackend{
		token:     "tok-sub",
		userShape: map[string]any{"id": "u-9", "email": "sub@x.id"},
	}
	c, _ := newTestClient(t, backend.handler())
	ctx := context.Background()

	var states []model.AuthState
	unsubscribe := c.Auth.OnAuthStateChange(func(state model.AuthState, _ *model.Session) {
		states = append(states, state)
	})

	// Immediate replay of the anonymous state.
	require.Equal(t, []model.AuthState{model.AuthStateSignedOut}, states)

	login := c.Auth.Login(ctx, model.LoginRequest{Email: "sub@x.id", Password: "rahasia"})
	require.False(t, login.Failed())
	require.Equal(t, []model.AuthState{model.AuthStateSignedOut, model.AuthStateSignedIn}, states)

	c.Auth.SignOut(ctx)
	require.Equal(t,
		[]model.AuthState{model.AuthStateSignedOut, model.AuthStateSignedIn, model.AuthStateSignedOut},
		states)

	// After unsubscribe nothing more arrives.
	unsubscribe()
	c.Auth.Login(ctx, model.LoginRequest{Email: "sub@x.id", Password: "rahasia"})
	assert.Len(t, states, 3)
}

func TestOnAuthStateChangeReplaysSignedIn(t *testing.T) {
	t.Parallel()
	backend := &authBackend{token: "tok", userShape: map[string]any{"id": "u", "email": "e@x.id"}}
	c, _ := newTestClient(t, backend.handler())
	c.setToken(context.Background(), "tok")

	var got model.AuthState
	var session *model.Session
	c.Auth.OnAuthStateChange(func(state model.AuthState, s *model.Session) {
		got = state
		session = s
	})

	assert.Equal(t, model.AuthStateSignedIn, got)
	require.NotNil(t, session)
	assert.Equal(t, "tok", session.AccessToken)
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.True(t, tokenExpiry(signed).Equal(exp))
	assert.True(t, tokenExpiry("opaque-token").IsZero())
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/password/reset-request", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"message": "email terkirim"}})
	})
	mux.HandleFunc("POST /auth/password/validate-token", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"valid": body["token"] == "good"}})
	})
	mux.HandleFunc("POST /auth/password/reset", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"message": "password diganti"}})
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	req := c.Auth.RequestPasswordReset(ctx, "a@b.id")
	require.False(t, req.Failed())
	assert.Equal(t, "email terkirim", req.Data.Message)

	valid := c.Auth.ValidateResetToken(ctx, "good")
	require.False(t, valid.Failed())
	assert.True(t, valid.Data.Valid)

	invalid := c.Auth.ValidateResetToken(ctx, "bad")
	require.False(t, invalid.Failed())
	assert.False(t, invalid.Data.Valid)

	reset := c.Auth.ResetPassword(ctx, "good", "baru123")
	require.False(t, reset.Failed())
	assert.Equal(t, "password diganti", reset.Data.Message)
}

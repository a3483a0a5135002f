package model

import "time"

// Session pairs a held access token with the identity it resolves to.
type Session struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	// ExpiresAt is decoded locally from the token's exp claim when the
	// token is a JWT. It is the zero time for opaque tokens.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// AuthState tags an auth-state change notification.
type AuthState string

const (
	AuthStateSignedIn  AuthState = "SIGNED_IN"
	AuthStateSignedOut AuthState = "SIGNED_OUT"
)

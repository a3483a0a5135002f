package model

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokens is the payload auth endpoints respond with.
type AuthTokens struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	User         map[string]any `json:"user,omitempty"`
}

// PasswordResetOutcome is the message-bearing reply of the reset endpoints.
type PasswordResetOutcome struct {
	Message string `json:"message"`
}

// TokenValidity is the reply of the reset-token validation endpoint.
type TokenValidity struct {
	Valid bool `json:"valid"`
}

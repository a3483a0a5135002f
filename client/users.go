package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// UsersService reads and updates the signed-in account.
type UsersService struct {
	c *Client
}

// Me returns the current identity, normalized from whatever casing the
// backend answered with.
func (s *UsersService) Me(ctx context.Context) Response[model.User] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodGet, "/me", nil), model.NormalizeUser)
}

// UpdateProfile changes profile fields; nil fields are left untouched.
func (s *UsersService) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) Response[model.User] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPut, "/me", req), model.NormalizeUser)
}

// ChangePassword rotates the account password.
func (s *UsersService) ChangePassword(ctx context.Context, current, next string) Response[struct{}] {
	body := map[string]string{"current_password": current, "new_password": next}
	return do[struct{}](ctx, s.c, http.MethodPut, "/me/password", body)
}

package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// CommunitiesService lists and joins communities. Pagination vocabulary:
// limit/offset.
type CommunitiesService struct {
	c *Client
}

// List returns communities matching opts, normalized (IsPrivate defaults
// to false when the backend omitted it).
func (s *CommunitiesService) List(ctx context.Context, opts model.CommunityListOptions) Response[[]model.Community] {
	q := newParams().
		Int("limit", opts.Limit).
		Int("offset", opts.Offset).
		Str("q", opts.Q)
	return normalizeEach(do[[]map[string]any](ctx, s.c, http.MethodGet, "/communities"+q.encode(), nil), model.NormalizeCommunity)
}

// Get returns one community.
func (s *CommunitiesService) Get(ctx context.Context, id string) Response[model.Community] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodGet, "/communities/"+id, nil), model.NormalizeCommunity)
}

// Create opens a new community owned by the signed-in user.
func (s *CommunitiesService) Create(ctx context.Context, req model.UpsertCommunityRequest) Response[model.Community] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPost, "/communities", req), model.NormalizeCommunity)
}

// Join adds the signed-in user to a community.
func (s *CommunitiesService) Join(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPost, "/communities/"+id+"/join", nil)
}

// Leave removes the signed-in user from a community.
func (s *CommunitiesService) Leave(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPost, "/communities/"+id+"/leave", nil)
}

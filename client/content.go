package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// LocationsService lists public therapy locations. Pagination
// vocabulary: page/per_page.
type LocationsService struct {
	c *Client
}

// List returns therapy locations matching opts.
func (s *LocationsService) List(ctx context.Context, opts model.LocationListOptions) Response[[]model.TherapyLocation] {
	q := newParams().
		Int("page", opts.Page).
		Int("per_page", opts.PerPage).
		Str("city", opts.City).
		Str("q", opts.Q)
	return do[[]model.TherapyLocation](ctx, s.c, http.MethodGet, "/public/locations"+q.encode(), nil)
}

// Get returns one therapy location.
func (s *LocationsService) Get(ctx context.Context, id string) Response[model.TherapyLocation] {
	return do[model.TherapyLocation](ctx, s.c, http.MethodGet, "/public/locations/"+id, nil)
}

// ContactService submits public contact/feedback messages.
type ContactService struct {
	c *Client
}

// Submit sends a contact message. No authentication required.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) Response[model.ContactMessage] {
	return do[model.ContactMessage](ctx, s.c, http.MethodPost, "/public/contact", req)
}

// ArticlesService lists public articles. Pagination vocabulary:
// page/per_page.
type ArticlesService struct {
	c *Client
}

// List returns published articles.
func (s *ArticlesService) List(ctx context.Context, opts model.ArticleListOptions) Response[[]model.Article] {
	q := newParams().
		Int("page", opts.Page).
		Int("per_page", opts.PerPage).
		Str("q", opts.Q)
	return do[[]model.Article](ctx, s.c, http.MethodGet, "/public/articles"+q.encode(), nil)
}

// Get returns one article by id or slug.
func (s *ArticlesService) Get(ctx context.Context, idOrSlug string) Response[model.Article] {
	return do[model.Article](ctx, s.c, http.MethodGet, "/public/articles/"+idOrSlug, nil)
}

// ResourcesService lists public accessibility resources. Pagination
// vocabulary: page/per_page.
type ResourcesService struct {
	c *Client
}

// List returns resources matching opts.
func (s *ResourcesService) List(ctx context.Context, opts model.ResourceListOptions) Response[[]model.Resource] {
	q := newParams().
		Int("page", opts.Page).
		Int("per_page", opts.PerPage).
		Str("category", opts.Category)
	return do[[]model.Resource](ctx, s.c, http.MethodGet, "/public/resources"+q.encode(), nil)
}

// Get returns one resource.
func (s *ResourcesService) Get(ctx context.Context, id string) Response[model.Resource] {
	return do[model.Resource](ctx, s.c, http.MethodGet, "/public/resources/"+id, nil)
}

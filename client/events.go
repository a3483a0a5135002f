package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// EventsService lists public events. Pagination vocabulary: limit/offset.
type EventsService struct {
	c *Client
}

// List returns published events matching opts. Every item comes back
// normalized: Mode lower-cased into the supported set, Status defaulted.
func (s *EventsService) List(ctx context.Context, opts model.EventListOptions) Response[[]model.Event] {
	q := newParams().
		Int("limit", opts.Limit).
		Int("offset", opts.Offset).
		Str("q", opts.Q)
	if opts.Mode != nil {
		q.StrVal("mode", string(*opts.Mode))
	}
	if opts.Status != nil {
		q.StrVal("status", string(*opts.Status))
	}
	return normalizeEach(do[[]map[string]any](ctx, s.c, http.MethodGet, "/public/events"+q.encode(), nil), model.NormalizeEvent)
}

// ListPage follows a server-issued pagination link (from Meta) verbatim.
func (s *EventsService) ListPage(ctx context.Context, pageURL string) Response[[]model.Event] {
	return normalizeEach(doURL[[]map[string]any](ctx, s.c, http.MethodGet, pageURL, nil), model.NormalizeEvent)
}

// Get returns one event.
func (s *EventsService) Get(ctx context.Context, id string) Response[model.Event] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodGet, "/public/events/"+id, nil), model.NormalizeEvent)
}

// Join registers the signed-in user for an event.
func (s *EventsService) Join(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPost, "/events/"+id+"/register", nil)
}

// normalizeOne maps a raw-payload response through a normalizer.
func normalizeOne[T any](resp Response[map[string]any], normalize func(map[string]any) T) Response[T] {
	out := Response[T]{Err: resp.Err, Status: resp.Status, Meta: resp.Meta}
	if resp.Failed() {
		return out
	}
	out.Data = normalize(resp.Data)
	return out
}

// normalizeEach maps a raw-list response through a normalizer.
func normalizeEach[T any](resp Response[[]map[string]any], normalize func(map[string]any) T) Response[[]T] {
	out := Response[[]T]{Err: resp.Err, Status: resp.Status, Meta: resp.Meta}
	if resp.Failed() {
		return out
	}
	items := make([]T, 0, len(resp.Data))
	for _, raw := range resp.Data {
		items = append(items, normalize(raw))
	}
	out.Data = items
	return out
}

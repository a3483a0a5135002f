package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// NotificationsService reads per-user notifications. Pagination
// vocabulary: page/page_size.
type NotificationsService struct {
	c *Client
}

// List returns the user's notifications.
func (s *NotificationsService) List(ctx context.Context, opts model.NotificationListOptions) Response[[]model.Notification] {
	q := newParams().
		Int("page", opts.Page).
		Int("page_size", opts.PageSize).
		Bool("unread", opts.UnreadOnly)
	return do[[]model.Notification](ctx, s.c, http.MethodGet, "/notifications"+q.encode(), nil)
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationsService) UnreadCount(ctx context.Context) Response[model.UnreadCount] {
	return do[model.UnreadCount](ctx, s.c, http.MethodGet, "/notifications/unread-count", nil)
}

// MarkRead marks one notification as read.
func (s *NotificationsService) MarkRead(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPut, "/notifications/"+id+"/read", nil)
}

// MarkAllRead marks every notification as read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPut, "/notifications/read-all", nil)
}

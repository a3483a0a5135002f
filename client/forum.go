package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// ForumService reads and posts discussion threads and replies.
// Pagination vocabulary: limit/offset.
type ForumService struct {
	c *Client
}

// Threads lists discussion threads, optionally scoped to a community.
func (s *ForumService) Threads(ctx context.Context, opts model.ForumListOptions) Response[[]model.ForumThread] {
	q := newParams().
		Int("limit", opts.Limit).
		Int("offset", opts.Offset).
		Str("community_id", opts.CommunityID)
	return do[[]model.ForumThread](ctx, s.c, http.MethodGet, "/forum/threads"+q.encode(), nil)
}

// Thread returns one thread.
func (s *ForumService) Thread(ctx context.Context, id string) Response[model.ForumThread] {
	return do[model.ForumThread](ctx, s.c, http.MethodGet, "/forum/threads/"+id, nil)
}

// CreateThread opens a new thread.
func (s *ForumService) CreateThread(ctx context.Context, req model.CreateThreadRequest) Response[model.ForumThread] {
	return do[model.ForumThread](ctx, s.c, http.MethodPost, "/forum/threads", req)
}

// Replies lists the replies in a thread.
func (s *ForumService) Replies(ctx context.Context, threadID string, opts model.ForumListOptions) Response[[]model.ForumReply] {
	q := newParams().
		Int("limit", opts.Limit).
		Int("offset", opts.Offset)
	return do[[]model.ForumReply](ctx, s.c, http.MethodGet, "/forum/threads/"+threadID+"/replies"+q.encode(), nil)
}

// CreateReply posts a reply to a thread.
func (s *ForumService) CreateReply(ctx context.Context, threadID string, req model.CreateReplyRequest) Response[model.ForumReply] {
	return do[model.ForumReply](ctx, s.c, http.MethodPost, "/forum/threads/"+threadID+"/replies", req)
}

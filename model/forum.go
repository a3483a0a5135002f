package model

// ForumThread is a discussion thread, optionally scoped to a community.
type ForumThread struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id,omitempty"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name,omitempty"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	ReplyCount  int    `json:"reply_count,omitempty"`
	Pinned      bool   `json:"pinned,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ForumReply is a reply within a thread.
type ForumReply struct {
	ID         string `json:"id"`
	ThreadID   string `json:"thread_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name,omitempty"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// CreateThreadRequest opens a new thread.
type CreateThreadRequest struct {
	CommunityID string `json:"community_id,omitempty"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// CreateReplyRequest posts a reply to a thread.
type CreateReplyRequest struct {
	Body string `json:"body"`
}

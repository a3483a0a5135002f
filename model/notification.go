package model

// Notification is a per-user notification entry.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UnreadCount is the reply of the unread-count endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}

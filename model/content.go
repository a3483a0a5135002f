package model

// Article is an editorial content entry (news, guides).
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Body        string `json:"body,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	Published   bool   `json:"published"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Resource is a downloadable or linkable accessibility resource.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	URL         string `json:"url,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ContactMessage is a feedback/contact submission.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Handled   bool   `json:"handled,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ContactRequest submits a contact/feedback message.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// UpsertArticleRequest creates or updates an article (admin only).
type UpsertArticleRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Body      string `json:"body"`
	CoverURL  string `json:"cover_url,omitempty"`
	Published bool   `json:"published"`
}

// UpsertResourceRequest creates or updates a resource (admin only).
type UpsertResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	URL         string `json:"url,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
}

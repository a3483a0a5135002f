package model

// List options per namespace. The pagination vocabulary is intentionally
// NOT unified: each backend namespace has its own parameter names (a
// historical artifact of the server growing endpoint by endpoint), and the
// client must send exactly the names that namespace expects. Nil/zero
// fields are never appended to the query string.
//
//	limit/offset    events, communities, forum threads/replies
//	page/page_size  notifications, all admin lists
//	page/per_page   locations, resources, articles

// EventListOptions filters and pages the events listing (limit/offset).
type EventListOptions struct {
	Limit  int
	Offset int
	Mode   *EventMode   // exact match
	Status *EventStatus // exact match
	Q      *string      // substring match on title
}

// CommunityListOptions filters and pages the communities listing (limit/offset).
type CommunityListOptions struct {
	Limit  int
	Offset int
	Q      *string // substring match on name
}

// ForumListOptions pages thread and reply listings (limit/offset).
type ForumListOptions struct {
	Limit       int
	Offset      int
	CommunityID *string // threads only
}

// NotificationListOptions pages the notification listing (page/page_size).
type NotificationListOptions struct {
	Page       int
	PageSize   int
	UnreadOnly bool
}

// LocationListOptions filters and pages therapy locations (page/per_page).
type LocationListOptions struct {
	Page    int
	PerPage int
	City    *string
	Q       *string
}

// ResourceListOptions filters and pages resources (page/per_page).
type ResourceListOptions struct {
	Page     int
	PerPage  int
	Category *string
}

// ArticleListOptions pages articles (page/per_page).
type ArticleListOptions struct {
	Page    int
	PerPage int
	Q       *string
}

// AdminListOptions pages any admin listing (page/page_size) with an
// optional free-text filter.
type AdminListOptions struct {
	Page     int
	PageSize int
	Q        *string
}

// AppointmentListOptions pages appointment listings (page/page_size).
type AppointmentListOptions struct {
	Page     int
	PageSize int
	Status   *AppointmentStatus
}

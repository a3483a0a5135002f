package model

// EventMode says how an event is attended.
type EventMode string

const (
	EventModeOnline  EventMode = "online"
	EventModeOffline EventMode = "offline"
	EventModeHybrid  EventMode = "hybrid"
)

// Valid reports whether the mode is supported.
func (m EventMode) Valid() bool {
	switch m {
	case EventModeOnline, EventModeOffline, EventModeHybrid:
		return true
	default:
		return false
	}
}

// ParseEventMode normalizes a mode string and reports whether it is supported.
func ParseEventMode(value string) (EventMode, bool) {
	mode := EventMode(normalizeToken(value))
	if mode.Valid() {
		return mode, true
	}
	return "", false
}

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// Valid reports whether the status is supported.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	default:
		return false
	}
}

// Event is the canonical client-side event shape.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Mode        EventMode   `json:"mode"`
	Status      EventStatus `json:"status"`
	Location    string      `json:"location,omitempty"`
	MeetingURL  string      `json:"meeting_url,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	StartsAt    string      `json:"starts_at,omitempty"`
	EndsAt      string      `json:"ends_at,omitempty"`
	Capacity    int         `json:"capacity,omitempty"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// NormalizeEvent reconciles a raw backend event payload. Mode is always
// lower-cased into the supported set (defaulting to offline when missing
// or unrecognized); Status defaults to published when absent.
func NormalizeEvent(raw map[string]any) Event {
	if raw == nil {
		return Event{}
	}

	mode, ok := ParseEventMode(probeString(raw, "Mode", "mode"))
	if !ok {
		mode = EventModeOffline
	}

	status := EventStatus(normalizeToken(probeString(raw, "Status", "status")))
	if !status.Valid() {
		status = EventStatusPublished
	}

	capacity, _ := probeFloat(raw, "Capacity", "capacity")

	return Event{
		ID:          probeString(raw, "ID", "Id", "id"),
		Title:       probeString(raw, "Title", "title"),
		Description: probeString(raw, "Description", "description"),
		Mode:        mode,
		Status:      status,
		Location:    probeString(raw, "Location", "location"),
		MeetingURL:  probeString(raw, "MeetingURL", "meeting_url"),
		ImageURL:    probeString(raw, "ImageURL", "image_url"),
		StartsAt:    probeString(raw, "StartsAt", "starts_at"),
		EndsAt:      probeString(raw, "EndsAt", "ends_at"),
		Capacity:    int(capacity),
		CreatedAt:   probeString(raw, "CreatedAt", "created_at"),
		UpdatedAt:   probeString(raw, "UpdatedAt", "updated_at"),
	}
}

// UpsertEventRequest creates or updates an event (admin only).
type UpsertEventRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Mode        EventMode   `json:"mode"`
	Status      EventStatus `json:"status,omitempty"`
	Location    string      `json:"location,omitempty"`
	MeetingURL  string      `json:"meeting_url,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	StartsAt    string      `json:"starts_at"`
	EndsAt      string      `json:"ends_at,omitempty"`
	Capacity    int         `json:"capacity,omitempty"`
}

package model

// AppointmentStatus tracks the scheduling lifecycle of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusDone      AppointmentStatus = "done"
)

// Valid reports whether the status is supported.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusDone:
		return true
	default:
		return false
	}
}

// Appointment is a scheduled therapy session.
type Appointment struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	TherapistID string            `json:"therapist_id,omitempty"`
	LocationID  string            `json:"location_id,omitempty"`
	Status      AppointmentStatus `json:"status"`
	ScheduledAt string            `json:"scheduled_at"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   string            `json:"created_at,omitempty"`
	UpdatedAt   string            `json:"updated_at,omitempty"`
}

// CreateAppointmentRequest books a new appointment.
type CreateAppointmentRequest struct {
	TherapistID string `json:"therapist_id,omitempty"`
	LocationID  string `json:"location_id,omitempty"`
	ScheduledAt string `json:"scheduled_at"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest reschedules or annotates an appointment.
// Nil fields are left unchanged by the backend.
type UpdateAppointmentRequest struct {
	Status      *AppointmentStatus `json:"status,omitempty"`
	ScheduledAt *string            `json:"scheduled_at,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

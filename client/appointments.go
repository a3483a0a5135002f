package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// AppointmentsService manages the signed-in user's therapy appointments.
// Pagination vocabulary: page/page_size.
type AppointmentsService struct {
	c *Client
}

// List returns the user's appointments.
func (s *AppointmentsService) List(ctx context.Context, opts model.AppointmentListOptions) Response[[]model.Appointment] {
	q := newParams().
		Int("page", opts.Page).
		Int("page_size", opts.PageSize)
	if opts.Status != nil {
		q.StrVal("status", string(*opts.Status))
	}
	return do[[]model.Appointment](ctx, s.c, http.MethodGet, "/appointments"+q.encode(), nil)
}

// Get returns one appointment.
func (s *AppointmentsService) Get(ctx context.Context, id string) Response[model.Appointment] {
	return do[model.Appointment](ctx, s.c, http.MethodGet, "/appointments/"+id, nil)
}

// Create books an appointment.
func (s *AppointmentsService) Create(ctx context.Context, req model.CreateAppointmentRequest) Response[model.Appointment] {
	return do[model.Appointment](ctx, s.c, http.MethodPost, "/appointments", req)
}

// Update reschedules or annotates an appointment.
func (s *AppointmentsService) Update(ctx context.Context, id string, req model.UpdateAppointmentRequest) Response[model.Appointment] {
	return do[model.Appointment](ctx, s.c, http.MethodPut, "/appointments/"+id, req)
}

// Cancel cancels an appointment.
func (s *AppointmentsService) Cancel(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/appointments/"+id, nil)
}

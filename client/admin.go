package client

import (
	"context"
	"net/http"

	"github.com/difakses/difakses-go/model"
)

// AdminService groups the admin-prefixed variants of the public
// namespaces. Public variants expose read/list/submit; these expose full
// CRUD. Every admin list paginates with page/page_size.
type AdminService struct {
	Events       *AdminEventsService
	Resources    *AdminResourcesService
	Articles     *AdminArticlesService
	Locations    *AdminLocationsService
	Contacts     *AdminContactsService
	Users        *AdminUsersService
	Communities  *AdminCommunitiesService
	Appointments *AdminAppointmentsService
	Forum        *AdminForumService
}

func newAdminService(c *Client) *AdminService {
	return &AdminService{
		Events:       &AdminEventsService{c: c},
		Resources:    &AdminResourcesService{c: c},
		Articles:     &AdminArticlesService{c: c},
		Locations:    &AdminLocationsService{c: c},
		Contacts:     &AdminContactsService{c: c},
		Users:        &AdminUsersService{c: c},
		Communities:  &AdminCommunitiesService{c: c},
		Appointments: &AdminAppointmentsService{c: c},
		Forum:        &AdminForumService{c: c},
	}
}

// adminQuery renders the shared page/page_size/q vocabulary.
func adminQuery(opts model.AdminListOptions) string {
	return newParams().
		Int("page", opts.Page).
		Int("page_size", opts.PageSize).
		Str("q", opts.Q).
		encode()
}

// AdminEventsService manages events, drafts included.
type AdminEventsService struct {
	c *Client
}

func (s *AdminEventsService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.Event] {
	return normalizeEach(do[[]map[string]any](ctx, s.c, http.MethodGet, "/admin/events"+adminQuery(opts), nil), model.NormalizeEvent)
}

func (s *AdminEventsService) Get(ctx context.Context, id string) Response[model.Event] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodGet, "/admin/events/"+id, nil), model.NormalizeEvent)
}

func (s *AdminEventsService) Create(ctx context.Context, req model.UpsertEventRequest) Response[model.Event] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPost, "/admin/events", req), model.NormalizeEvent)
}

func (s *AdminEventsService) Update(ctx context.Context, id string, req model.UpsertEventRequest) Response[model.Event] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPut, "/admin/events/"+id, req), model.NormalizeEvent)
}

func (s *AdminEventsService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/events/"+id, nil)
}

// AdminResourcesService manages accessibility resources.
type AdminResourcesService struct {
	c *Client
}

func (s *AdminResourcesService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.Resource] {
	return do[[]model.Resource](ctx, s.c, http.MethodGet, "/admin/resources"+adminQuery(opts), nil)
}

func (s *AdminResourcesService) Create(ctx context.Context, req model.UpsertResourceRequest) Response[model.Resource] {
	return do[model.Resource](ctx, s.c, http.MethodPost, "/admin/resources", req)
}

func (s *AdminResourcesService) Update(ctx context.Context, id string, req model.UpsertResourceRequest) Response[model.Resource] {
	return do[model.Resource](ctx, s.c, http.MethodPut, "/admin/resources/"+id, req)
}

func (s *AdminResourcesService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/resources/"+id, nil)
}

// AdminArticlesService manages editorial articles.
type AdminArticlesService struct {
	c *Client
}

func (s *AdminArticlesService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.Article] {
	return do[[]model.Article](ctx, s.c, http.MethodGet, "/admin/articles"+adminQuery(opts), nil)
}

func (s *AdminArticlesService) Create(ctx context.Context, req model.UpsertArticleRequest) Response[model.Article] {
	return do[model.Article](ctx, s.c, http.MethodPost, "/admin/articles", req)
}

func (s *AdminArticlesService) Update(ctx context.Context, id string, req model.UpsertArticleRequest) Response[model.Article] {
	return do[model.Article](ctx, s.c, http.MethodPut, "/admin/articles/"+id, req)
}

func (s *AdminArticlesService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/articles/"+id, nil)
}

// AdminLocationsService manages therapy locations.
type AdminLocationsService struct {
	c *Client
}

func (s *AdminLocationsService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.TherapyLocation] {
	return do[[]model.TherapyLocation](ctx, s.c, http.MethodGet, "/admin/locations"+adminQuery(opts), nil)
}

func (s *AdminLocationsService) Create(ctx context.Context, req model.UpsertLocationRequest) Response[model.TherapyLocation] {
	return do[model.TherapyLocation](ctx, s.c, http.MethodPost, "/admin/locations", req)
}

func (s *AdminLocationsService) Update(ctx context.Context, id string, req model.UpsertLocationRequest) Response[model.TherapyLocation] {
	return do[model.TherapyLocation](ctx, s.c, http.MethodPut, "/admin/locations/"+id, req)
}

func (s *AdminLocationsService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/locations/"+id, nil)
}

// AdminContactsService reviews contact/feedback submissions.
type AdminContactsService struct {
	c *Client
}

func (s *AdminContactsService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.ContactMessage] {
	return do[[]model.ContactMessage](ctx, s.c, http.MethodGet, "/admin/contacts"+adminQuery(opts), nil)
}

func (s *AdminContactsService) Get(ctx context.Context, id string) Response[model.ContactMessage] {
	return do[model.ContactMessage](ctx, s.c, http.MethodGet, "/admin/contacts/"+id, nil)
}

func (s *AdminContactsService) MarkHandled(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodPut, "/admin/contacts/"+id+"/handled", nil)
}

func (s *AdminContactsService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/contacts/"+id, nil)
}

// AdminUsersService manages accounts.
type AdminUsersService struct {
	c *Client
}

func (s *AdminUsersService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.User] {
	return normalizeEach(do[[]map[string]any](ctx, s.c, http.MethodGet, "/admin/users"+adminQuery(opts), nil), model.NormalizeUser)
}

func (s *AdminUsersService) Get(ctx context.Context, id string) Response[model.User] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodGet, "/admin/users/"+id, nil), model.NormalizeUser)
}

func (s *AdminUsersService) SetRole(ctx context.Context, id string, role model.UserRole) Response[model.User] {
	body := map[string]string{"role": string(role)}
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPut, "/admin/users/"+id+"/role", body), model.NormalizeUser)
}

func (s *AdminUsersService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/users/"+id, nil)
}

// AdminCommunitiesService moderates communities.
type AdminCommunitiesService struct {
	c *Client
}

func (s *AdminCommunitiesService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.Community] {
	return normalizeEach(do[[]map[string]any](ctx, s.c, http.MethodGet, "/admin/communities"+adminQuery(opts), nil), model.NormalizeCommunity)
}

func (s *AdminCommunitiesService) Update(ctx context.Context, id string, req model.UpsertCommunityRequest) Response[model.Community] {
	return normalizeOne(do[map[string]any](ctx, s.c, http.MethodPut, "/admin/communities/"+id, req), model.NormalizeCommunity)
}

func (s *AdminCommunitiesService) Delete(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/communities/"+id, nil)
}

// AdminAppointmentsService oversees all appointments.
type AdminAppointmentsService struct {
	c *Client
}

func (s *AdminAppointmentsService) List(ctx context.Context, opts model.AdminListOptions) Response[[]model.Appointment] {
	return do[[]model.Appointment](ctx, s.c, http.MethodGet, "/admin/appointments"+adminQuery(opts), nil)
}

func (s *AdminAppointmentsService) Update(ctx context.Context, id string, req model.UpdateAppointmentRequest) Response[model.Appointment] {
	return do[model.Appointment](ctx, s.c, http.MethodPut, "/admin/appointments/"+id, req)
}

// AdminForumService moderates threads and replies.
type AdminForumService struct {
	c *Client
}

func (s *AdminForumService) PinThread(ctx context.Context, id string, pinned bool) Response[model.ForumThread] {
	body := map[string]bool{"pinned": pinned}
	return do[model.ForumThread](ctx, s.c, http.MethodPut, "/admin/forum/threads/"+id+"/pin", body)
}

func (s *AdminForumService) DeleteThread(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/forum/threads/"+id, nil)
}

func (s *AdminForumService) DeleteReply(ctx context.Context, id string) Response[struct{}] {
	return do[struct{}](ctx, s.c, http.MethodDelete, "/admin/forum/replies/"+id, nil)
}

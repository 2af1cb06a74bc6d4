package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type adminStore interface {
	ListUsersPage(ctx context.Context, page, limit int, role string) ([]models.User, int64, error)
	GetAdminStats(ctx context.Context) (*store.AdminStats, error)
	ListRecentContacts(ctx context.Context, limit int) ([]models.Contact, error)
	UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) error
	CreateBlogPost(ctx context.Context, p *models.BlogPost) error
	ApproveTestimonial(ctx context.Context, id string) error
}

type AdminHandler struct {
	store adminStore
}

func NewAdminHandler(s adminStore) *AdminHandler {
	return &AdminHandler{store: s}
}

// GET /admin/users?page&limit&role
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	role := r.URL.Query().Get("role")

	users, total, err := h.store.ListUsersPage(r.Context(), page, limit, role)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching users", nil, err.Error())
		return
	}
	if page < 1 {
		page = 1
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{
		"users": users,
		"total": total,
		"page":  page,
	}, nil)
}

// GET /admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetAdminStats(r.Context())
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching stats", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", stats, nil)
}

// GET /admin/contacts — latest 50, newest first.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.store.ListRecentContacts(r.Context(), 50)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching contacts", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", contacts, nil)
}

// PUT /admin/contacts/{id} — status workflow new → read → replied.
func (h *AdminHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	status := models.ContactStatus(payload.Status)
	switch status {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied:
	default:
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid status", nil, nil)
		return
	}

	if err := h.store.UpdateContactStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "contact not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "contact updated", nil, nil)
}

// POST /admin/blog
func (h *AdminHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		Title     string   `json:"title"`
		Slug      string   `json:"slug"`
		Content   string   `json:"content"`
		Excerpt   string   `json:"excerpt"`
		Tags      []string `json:"tags"`
		Published bool     `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.Title == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "title is required", nil, nil)
		return
	}
	if payload.Content == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "content is required", nil, nil)
		return
	}

	post := &models.BlogPost{
		ID:         utils.GenerateID(),
		Title:      payload.Title,
		Slug:       payload.Slug,
		Content:    payload.Content,
		Excerpt:    payload.Excerpt,
		Tags:       utils.DatatypesJSONFromStrings(payload.Tags),
		AuthorID:   current.ID,
		AuthorName: current.FullName(),
		Published:  payload.Published,
	}
	if err := h.store.CreateBlogPost(r.Context(), post); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating post", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "post created", map[string]interface{}{
		"id": post.ID,
	}, nil)
}

// POST /admin/testimonials/{id}/approve
func (h *AdminHandler) ApproveTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing id", nil, nil)
		return
	}
	if err := h.store.ApproveTestimonial(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "testimonial not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "approve failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "testimonial approved", nil, nil)
}

package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type publicStore interface {
	ListPublishedPosts(ctx context.Context, limit int) ([]models.BlogPost, error)
	ListApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
}

type BlogHandler struct {
	store publicStore
}

func NewBlogHandler(s publicStore) *BlogHandler {
	return &BlogHandler{store: s}
}

// GET /blog — public, published posts only.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListPublishedPosts(r.Context(), 10)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching posts", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", posts, nil)
}

// GET /testimonials — public, approved items only.
func (h *BlogHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListApprovedTestimonials(r.Context(), 12)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching testimonials", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", items, nil)
}

// POST /testimonials — authenticated; inserted unapproved and invisible
// until an admin approves it.
func (h *BlogHandler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		Role   string `json:"role"`
		Text   string `json:"text"`
		Rating int    `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.Text == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "text is required", nil, nil)
		return
	}
	if payload.Role == "" {
		payload.Role = string(current.Role)
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		payload.Rating = 5
	}

	t := &models.Testimonial{
		ID:     utils.GenerateID(),
		UserID: current.ID,
		Name:   current.FullName(),
		Role:   payload.Role,
		Text:   payload.Text,
		Rating: payload.Rating,
	}
	if err := h.store.CreateTestimonial(r.Context(), t); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error submitting testimonial", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "testimonial submitted for review", map[string]interface{}{
		"id": t.ID,
	}, nil)
}

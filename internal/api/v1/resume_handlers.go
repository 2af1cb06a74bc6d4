package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type resumeStore interface {
	CreateResume(ctx context.Context, r *models.Resume) error
	GetResume(ctx context.Context, id, userID string) (*models.Resume, error)
	ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error)
	UpdateResume(ctx context.Context, id, userID string, fields map[string]interface{}) error
}

type ResumeHandler struct {
	store resumeStore
}

func NewResumeHandler(s resumeStore) *ResumeHandler {
	return &ResumeHandler{store: s}
}

// GET /resume — owner-scoped list.
func (h *ResumeHandler) ListResumes(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	resumes, err := h.store.ListResumesByUser(r.Context(), current.ID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching resumes", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", resumes, nil)
}

// GET /resume/{id} — owner-scoped; someone else's id is a 404.
func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing id", nil, nil)
		return
	}
	resume, err := h.store.GetResume(r.Context(), id, current.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "resume not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching resume", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", resume, nil)
}

// POST /resume
func (h *ResumeHandler) CreateResume(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		Title          string                 `json:"title"`
		Template       string                 `json:"template"`
		Personal       map[string]interface{} `json:"personal"`
		Education      []interface{}          `json:"education"`
		Experience     []interface{}          `json:"experience"`
		Skills         []interface{}          `json:"skills"`
		Projects       []interface{}          `json:"projects"`
		Certifications []interface{}          `json:"certifications"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.Title == "" {
		payload.Title = "My Resume"
	}
	if payload.Template == "" {
		payload.Template = "modern"
	}

	resume := &models.Resume{
		ID:             utils.GenerateID(),
		UserID:         current.ID, // owner comes from the token, never the payload
		Title:          payload.Title,
		Template:       payload.Template,
		Personal:       payload.Personal,
		Education:      utils.DatatypesJSONFromAny(payload.Education),
		Experience:     utils.DatatypesJSONFromAny(payload.Experience),
		Skills:         utils.DatatypesJSONFromAny(payload.Skills),
		Projects:       utils.DatatypesJSONFromAny(payload.Projects),
		Certifications: utils.DatatypesJSONFromAny(payload.Certifications),
	}
	if err := h.store.CreateResume(r.Context(), resume); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating resume", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "resume created", map[string]interface{}{
		"id": resume.ID,
	}, nil)
}

// PUT /resume/{id} — versioned, owner-scoped update. Version bumps by one
// atomically with the field write; an id that is not the caller's own
// resolves to 404.
func (h *ResumeHandler) UpdateResume(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing id", nil, nil)
		return
	}

	var payload struct {
		Title          *string                 `json:"title,omitempty"`
		Template       *string                 `json:"template,omitempty"`
		Personal       *map[string]interface{} `json:"personal,omitempty"`
		Education      *[]interface{}          `json:"education,omitempty"`
		Experience     *[]interface{}          `json:"experience,omitempty"`
		Skills         *[]interface{}          `json:"skills,omitempty"`
		Projects       *[]interface{}          `json:"projects,omitempty"`
		Certifications *[]interface{}          `json:"certifications,omitempty"`
		IsPublic       *bool                   `json:"is_public,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Template != nil {
		updates["template"] = *payload.Template
	}
	if payload.Personal != nil {
		updates["personal"] = utils.DatatypesJSONFromAny(*payload.Personal)
	}
	if payload.Education != nil {
		updates["education"] = utils.DatatypesJSONFromAny(*payload.Education)
	}
	if payload.Experience != nil {
		updates["experience"] = utils.DatatypesJSONFromAny(*payload.Experience)
	}
	if payload.Skills != nil {
		updates["skills"] = utils.DatatypesJSONFromAny(*payload.Skills)
	}
	if payload.Projects != nil {
		updates["projects"] = utils.DatatypesJSONFromAny(*payload.Projects)
	}
	if payload.Certifications != nil {
		updates["certifications"] = utils.DatatypesJSONFromAny(*payload.Certifications)
	}
	if payload.IsPublic != nil {
		updates["is_public"] = *payload.IsPublic
	}

	if err := h.store.UpdateResume(r.Context(), id, current.ID, updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "resume not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "resume updated", map[string]interface{}{
		"id": id,
	}, nil)
}

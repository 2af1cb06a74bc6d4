package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type sessionStore interface {
	CreateMentorSession(ctx context.Context, ms *models.MentorSession) error
	ListSessionsByStudent(ctx context.Context, studentID string) ([]models.MentorSession, error)
	UpdateSessionStatus(ctx context.Context, id, studentID string, status models.SessionStatus) error
}

type SessionHandler struct {
	store sessionStore
}

func NewSessionHandler(s sessionStore) *SessionHandler {
	return &SessionHandler{store: s}
}

// GET /sessions — the caller's own bookings.
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	sessions, err := h.store.ListSessionsByStudent(r.Context(), current.ID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching sessions", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", sessions, nil)
}

// POST /sessions — book a mentor session.
func (h *SessionHandler) BookSession(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		MentorID    string `json:"mentor_id"`
		ScheduledAt string `json:"scheduled_at"` // RFC3339
		Duration    int    `json:"duration"`
		Type        string `json:"type"`
		Notes       string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.ScheduledAt == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "scheduled_at is required", nil, nil)
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, payload.ScheduledAt)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "scheduled_at must be RFC3339", nil, err.Error())
		return
	}
	if payload.Type == "" {
		payload.Type = "general"
	}
	if payload.Duration <= 0 {
		payload.Duration = 30
	}

	ms := &models.MentorSession{
		ID:          utils.GenerateID(),
		StudentID:   current.ID,
		MentorID:    payload.MentorID,
		ScheduledAt: scheduledAt,
		Duration:    payload.Duration,
		Type:        payload.Type,
		Notes:       payload.Notes,
	}
	if err := h.store.CreateMentorSession(r.Context(), ms); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error booking session", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "session booked", map[string]interface{}{
		"id": ms.ID,
	}, nil)
}

// PUT /sessions/{id} — cancel or complete one's own booking.
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	id := chi.URLParam(r, "id")

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	status := models.SessionStatus(payload.Status)
	switch status {
	case models.SessionStatusCompleted, models.SessionStatusCancelled:
	default:
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid status", nil, nil)
		return
	}

	if err := h.store.UpdateSessionStatus(r.Context(), id, current.ID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "session not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "session updated", nil, nil)
}

package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type profileStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error
	GetProgressByUser(ctx context.Context, userID string) (*models.ProgressReport, error)
	UpsertProgress(ctx context.Context, userID string, fields map[string]interface{}) error
}

type UserHandler struct {
	store profileStore
}

func NewUserHandler(s profileStore) *UserHandler {
	return &UserHandler{store: s}
}

// GET /user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	// the middleware already fetched a fresh row; PasswordHash is json:"-"
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", current, nil)
}

// PUT /user/profile — self-scoped partial update. Role, email and the
// password hash are not updatable through this route.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		FirstName *string                 `json:"first_name,omitempty"`
		LastName  *string                 `json:"last_name,omitempty"`
		Phone     *string                 `json:"phone,omitempty"`
		College   *string                 `json:"college,omitempty"`
		Bio       *string                 `json:"bio,omitempty"`
		Skills    *[]string               `json:"skills,omitempty"`
		Profile   *map[string]interface{} `json:"profile,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if payload.FirstName != nil {
		updates["first_name"] = *payload.FirstName
	}
	if payload.LastName != nil {
		updates["last_name"] = *payload.LastName
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}
	if payload.College != nil {
		updates["college"] = *payload.College
	}
	if payload.Bio != nil {
		updates["bio"] = *payload.Bio
	}
	if payload.Skills != nil {
		updates["skills"] = utils.DatatypesJSONFromStrings(*payload.Skills)
	}
	if payload.Profile != nil {
		updates["profile"] = utils.DatatypesJSONFromAny(*payload.Profile)
	}

	if len(updates) > 0 {
		if err := h.store.UpdateUserFields(r.Context(), current.ID, updates); err != nil {
			utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
			return
		}
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "profile updated", nil, nil)
}

// GET /user/progress
func (h *UserHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	p, err := h.store.GetProgressByUser(r.Context(), current.ID)
	if err != nil {
		// no progress written yet: empty object, not an error
		utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{}, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", p, nil)
}

// PUT /user/progress — upsert: update by owner id, insert on no match.
func (h *UserHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		CareerReadiness  *int                    `json:"career_readiness,omitempty"`
		Skills           *map[string]interface{} `json:"skills,omitempty"`
		SessionsAttended *int                    `json:"sessions_attended,omitempty"`
		JobsApplied      *int                    `json:"jobs_applied,omitempty"`
		ResumeViews      *int                    `json:"resume_views,omitempty"`
		WeeklyGoals      *[]interface{}          `json:"weekly_goals,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if payload.CareerReadiness != nil {
		updates["career_readiness"] = *payload.CareerReadiness
	}
	if payload.Skills != nil {
		updates["skills"] = utils.DatatypesJSONFromAny(*payload.Skills)
	}
	if payload.SessionsAttended != nil {
		updates["sessions_attended"] = *payload.SessionsAttended
	}
	if payload.JobsApplied != nil {
		updates["jobs_applied"] = *payload.JobsApplied
	}
	if payload.ResumeViews != nil {
		updates["resume_views"] = *payload.ResumeViews
	}
	if payload.WeeklyGoals != nil {
		updates["weekly_goals"] = utils.DatatypesJSONFromAny(*payload.WeeklyGoals)
	}

	if err := h.store.UpsertProgress(r.Context(), current.ID, updates); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "update failed", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "progress updated", nil, nil)
}

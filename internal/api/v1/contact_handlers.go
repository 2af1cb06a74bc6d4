package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type contactStore interface {
	CreateContact(ctx context.Context, c *models.Contact) error
	SubscribeNewsletter(ctx context.Context, email, name string) (bool, error)
}

type notifier interface {
	SendAsync(to, subject, body string)
}

type ContactHandler struct {
	cfg    *config.Config
	store  contactStore
	mailer notifier
}

func NewContactHandler(cfg *config.Config, s contactStore, m notifier) *ContactHandler {
	return &ContactHandler{cfg: cfg, store: s, mailer: m}
}

// POST /contact — public. The admin notification mail is best-effort:
// fired in a goroutine, failure never reaches the caller.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Role    string `json:"role"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	required := []struct{ name, val string }{
		{"name", payload.Name},
		{"email", payload.Email},
		{"message", payload.Message},
	}
	for _, f := range required {
		if f.val == "" {
			utils.WriteJSONResponse(w, http.StatusBadRequest, false, f.name+" is required", nil, nil)
			return
		}
	}

	c := &models.Contact{
		ID:      utils.GenerateID(),
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Role:    payload.Role,
		Message: payload.Message,
	}
	if err := h.store.CreateContact(r.Context(), c); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error saving message", nil, err.Error())
		return
	}

	if h.mailer != nil {
		body := fmt.Sprintf("Name: %s\nEmail: %s\nRole: %s\n\n%s", payload.Name, payload.Email, payload.Role, payload.Message)
		h.mailer.SendAsync(h.cfg.AdminEmail, "New Contact: "+payload.Name, body)
	}

	utils.WriteJSONResponse(w, http.StatusOK, true, "message received! we'll respond within 24 hours", map[string]interface{}{
		"id": c.ID,
	}, nil)
}

// POST /newsletter/subscribe — public, idempotent.
func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.Email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email is required", nil, nil)
		return
	}

	created, err := h.store.SubscribeNewsletter(r.Context(), payload.Email, payload.Name)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "subscription failed", nil, err.Error())
		return
	}
	if !created {
		utils.WriteJSONResponse(w, http.StatusOK, true, "already subscribed", nil, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "subscribed successfully", nil, nil)
}

package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/api/idtoken"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type userCreator interface {
	CreateUser(ctx context.Context, email, password, firstName, lastName string, role models.Role) (*models.User, error)
}

type authStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	cfg   *config.Config
	user  userCreator
	store authStore
}

func NewAuthHandler(cfg *config.Config, userSvc userCreator, s authStore) *AuthHandler {
	return &AuthHandler{cfg: cfg, user: userSvc, store: s}
}

// Register handler: POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}

	// 400 names the first missing field
	required := []struct{ name, val string }{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"password", req.Password},
		{"role", req.Role},
	}
	for _, f := range required {
		if f.val == "" {
			utils.WriteJSONResponse(w, http.StatusBadRequest, false, f.name+" is required", nil, nil)
			return
		}
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid role", nil, nil)
		return
	}

	user, err := h.user.CreateUser(r.Context(), req.Email, req.Password, req.FirstName, req.LastName, role)
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			utils.WriteJSONResponse(w, http.StatusConflict, false, "email already registered", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating user", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "registration successful", map[string]interface{}{
		"user_id": user.ID,
	}, nil)
}

// Login handler: POST /auth/login. Unknown email and wrong password are
// indistinguishable to the caller.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}

	u, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid credentials", nil, nil)
		return
	}
	ok, err := utils.ComparePasswordAndHash(req.Password, u.PasswordHash)
	if err != nil || !ok {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid credentials", nil, nil)
		return
	}

	token, err := auth.GenerateAccessToken(h.cfg, u.ID, string(u.Role))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "token error", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "login successful", map[string]interface{}{
		"token": token,
		"role":  u.Role,
		"name":  u.FullName(),
	}, nil)
}

// GoogleSignIn handler: POST /auth/google. Exchanges the authorization
// code server-side, validates the id token and signs the user in,
// creating a student account on first contact.
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "code is required", nil, nil)
		return
	}

	ctx := r.Context()
	oauthCfg := &oauth2.Config{
		ClientID:     h.cfg.GoogleClientID,
		ClientSecret: h.cfg.GoogleClientSecret,
		RedirectURL:  h.cfg.GoogleRedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}

	token, err := oauthCfg.Exchange(ctx, req.Code)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "code exchange failed", nil, err.Error())
		return
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "id_token not present in token response", nil, nil)
		return
	}
	payload, err := idtoken.Validate(ctx, rawIDToken, h.cfg.GoogleClientID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "invalid id token", nil, err.Error())
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "email not present in token", nil, nil)
		return
	}
	firstName, _ := payload.Claims["given_name"].(string)
	lastName, _ := payload.Claims["family_name"].(string)

	u, err := h.store.GetUserByEmail(ctx, email)
	if err != nil {
		// first sign-in: create a passwordless student account
		u, err = h.user.CreateUser(ctx, email, "", firstName, lastName, models.RoleStudent)
		if err != nil {
			utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating user", nil, err.Error())
			return
		}
	}

	access, err := auth.GenerateAccessToken(h.cfg, u.ID, string(u.Role))
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "token error", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "login successful", map[string]interface{}{
		"token": access,
		"role":  u.Role,
		"name":  u.FullName(),
	}, nil)
}

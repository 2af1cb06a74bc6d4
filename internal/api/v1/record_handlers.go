package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type recordStore interface {
	CreateRecord(ctx context.Context, rec *models.Record) error
	GetRecord(ctx context.Context, id, userID string) (*models.Record, error)
	ListRecordsByUser(ctx context.Context, userID string) ([]models.Record, error)
	SetRecordFileURL(ctx context.Context, id, userID, fileURL string) error
}

type objectStorage interface {
	SaveFile(ctx context.Context, subDir, originalFilename string, reader io.Reader) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
	PresignGetObject(ctx context.Context, objectKey string, duration time.Duration) (string, error)
}

type RecordHandler struct {
	store   recordStore
	storage objectStorage
}

func NewRecordHandler(s recordStore, storage objectStorage) *RecordHandler {
	return &RecordHandler{store: s, storage: storage}
}

// GET /records — owner-scoped list.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}
	records, err := h.store.ListRecordsByUser(r.Context(), current.ID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching records", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", records, nil)
}

// POST /records
func (h *RecordHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	current := auth.GetUserFromCtx(r.Context())
	if current == nil {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "unauthorized", nil, nil)
		return
	}

	var payload struct {
		Type        string   `json:"type"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Issuer      string   `json:"issuer"`
		Date        string   `json:"date"`
		FileURL     string   `json:"file_url"`
		Tags        []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid request body", nil, err.Error())
		return
	}
	if payload.Type == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "type is required", nil, nil)
		return
	}
	if payload.Title == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "title is required", nil, nil)
		return
	}

	rec := &models.Record{
		ID:          utils.GenerateID(),
		UserID:      current.ID,
		Type:        payload.Type,
		Title:       payload.Title,
		Description: payload.Description,
		Issuer:      payload.Issuer,
		Date:        payload.Date,
		FileURL:     payload.FileURL,
		Tags:        utils.DatatypesJSONFromStrings(payload.Tags),
	}
	if err := h.store.CreateRecord(r.Context(), rec); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error adding record", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "record added", map[string]interface{}{
		"id": rec.ID,
	}, nil)
}

// GET /records/{id} — owner-scoped fetch; an attached object gets a
// presigned download URL alongside the record.
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
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
	rec, err := h.store.GetRecord(r.Context(), id, current.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "record not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching record", nil, err.Error())
		return
	}

	url := ""
	if rec.FileURL != "" && h.storage != nil {
		if u, err := h.storage.PresignGetObject(r.Context(), rec.FileURL, 24*time.Hour); err == nil {
			url = u
		}
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", map[string]interface{}{
		"record": rec,
		"url":    url,
	}, nil)
}

// POST /records/{id}/attachment — multipart upload to R2, owner-scoped.
// Replacing an attachment removes the previous object so the bucket does
// not accumulate orphans.
func (h *RecordHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
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
	if h.storage == nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, false, "file storage not configured", nil, nil)
		return
	}

	// resolve ownership before touching storage, so a wrong id never
	// uploads an orphan object
	existing, err := h.store.GetRecord(r.Context(), id, current.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "record not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching record", nil, err.Error())
		return
	}

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "file too large or invalid form", nil, err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "file is required", nil, err.Error())
		return
	}
	defer file.Close()

	objectKey, err := h.storage.SaveFile(r.Context(), "records/"+current.ID, header.Filename, file)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "failed to save file", nil, err.Error())
		return
	}

	if err := h.store.SetRecordFileURL(r.Context(), id, current.ID, objectKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "record not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "failed to update record", nil, err.Error())
		return
	}

	if existing.FileURL != "" && existing.FileURL != objectKey {
		// best-effort cleanup of the replaced object
		_ = h.storage.DeleteFile(r.Context(), existing.FileURL)
	}

	url, err := h.storage.PresignGetObject(r.Context(), objectKey, 24*time.Hour)
	if err != nil {
		// key is stored; the presign failure only degrades the response
		url = ""
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "attachment uploaded", map[string]string{
		"file_url": objectKey,
		"url":      url,
	}, nil)
}

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/models"
)

func seedTestimonial(fs *fakeStore, id, text string, approved bool, createdAt time.Time) {
	fs.testimonials[id] = &models.Testimonial{
		ID:        id,
		Name:      "Jane Doe",
		Text:      text,
		Rating:    5,
		Approved:  approved,
		CreatedAt: createdAt,
	}
}

func TestListTestimonials_ApprovedOnlyNewestFirst(t *testing.T) {
	fs := newFakeStore()
	now := time.Now()
	seedTestimonial(fs, "t-old", "older praise", true, now.Add(-48*time.Hour))
	seedTestimonial(fs, "t-new", "newer praise", true, now)
	seedTestimonial(fs, "t-pending", "awaiting review", false, now.Add(-time.Hour))

	h := NewBlogHandler(fs)
	rec := httptest.NewRecorder()
	h.ListTestimonials(rec, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "newer praise", data[0].(map[string]interface{})["text"])
	assert.Equal(t, "older praise", data[1].(map[string]interface{})["text"])
}

func TestSubmitTestimonial_InvisibleUntilApproved(t *testing.T) {
	fs := newFakeStore()
	seedUser(fs, "USR00AAAAA", "a@x.com", models.RoleStudent)
	cfg := testCfg()
	h := NewBlogHandler(fs)
	r := chi.NewRouter()
	r.Get("/testimonials", h.ListTestimonials)
	r.With(auth.AuthMiddleware(cfg, fs)).Post("/testimonials", h.SubmitTestimonial)
	token, _ := auth.GenerateAccessToken(cfg, "USR00AAAAA", "student")

	rec := doAuthed(r, http.MethodPost, "/testimonials", token, map[string]interface{}{
		"text":   "great mentoring",
		"rating": 5,
		// an approved flag in the payload must not pre-approve it
		"approved": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeBody(t, rec)["data"].(map[string]interface{})["id"].(string)
	assert.False(t, fs.testimonials[id].Approved)

	req := httptest.NewRequest(http.MethodGet, "/testimonials", nil)
	pub := httptest.NewRecorder()
	r.ServeHTTP(pub, req)
	require.Equal(t, http.StatusOK, pub.Code)
	assert.Empty(t, decodeBody(t, pub)["data"])
}

package v1

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/store"
)

// fakeStore is an in-memory stand-in for *store.Store, in the shape the
// handler interfaces need. Owner scoping, the resume version counter and
// the progress upsert behave like the real store so the handler
// contracts are testable without Postgres.
type fakeStore struct {
	mu           sync.Mutex
	users        map[string]*models.User // by id
	resumes      map[string]*models.Resume
	records      map[string]*models.Record
	progress     map[string]*models.ProgressReport // by owner id
	testimonials map[string]*models.Testimonial
	stats        store.AdminStats

	progressInserts int
	progressUpdates int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]*models.User{},
		resumes:      map[string]*models.Resume{},
		records:      map[string]*models.Record{},
		progress:     map[string]*models.ProgressReport{},
		testimonials: map[string]*models.Testimonial{},
	}
}

var errRecordNotFound = errors.New("record not found")

/* ---- user / auth ---- */

func (f *fakeStore) CreateUser(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrEmailExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cnt int64
	for _, u := range f.users {
		if u.Email == email {
			cnt++
		}
	}
	return cnt, nil
}

func (f *fakeStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errRecordNotFound
}

func (f *fakeStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errRecordNotFound
}

func (f *fakeStore) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errRecordNotFound
	}
	if v, ok := fields["first_name"].(string); ok {
		u.FirstName = v
	}
	if v, ok := fields["last_name"].(string); ok {
		u.LastName = v
	}
	if v, ok := fields["bio"].(string); ok {
		u.Bio = v
	}
	return nil
}

/* ---- progress (upsert: update by owner, insert on no match) ---- */

func (f *fakeStore) GetProgressByUser(ctx context.Context, userID string) (*models.ProgressReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.progress[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errRecordNotFound
}

func (f *fakeStore) UpsertProgress(ctx context.Context, userID string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.progress[userID]
	if ok {
		f.progressUpdates++
	} else {
		p = &models.ProgressReport{UserID: userID}
		f.progress[userID] = p
		f.progressInserts++
	}
	if v, ok := fields["career_readiness"].(int); ok {
		p.CareerReadiness = v
	}
	if v, ok := fields["sessions_attended"].(int); ok {
		p.SessionsAttended = v
	}
	if v, ok := fields["jobs_applied"].(int); ok {
		p.JobsApplied = v
	}
	p.UpdatedAt = time.Now()
	return nil
}

/* ---- resumes ---- */

func (f *fakeStore) CreateResume(ctx context.Context, r *models.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.Version = 1
	cp := *r
	f.resumes[r.ID] = &cp
	return nil
}

func (f *fakeStore) GetResume(ctx context.Context, id, userID string) (*models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resumes[id]
	if !ok || r.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Resume
	for _, r := range f.resumes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateResume(ctx context.Context, id, userID string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resumes[id]
	if !ok || r.UserID != userID {
		return store.ErrNotFound
	}
	if title, ok := fields["title"].(string); ok {
		r.Title = title
	}
	r.Version++
	return nil
}

/* ---- records ---- */

func (f *fakeStore) CreateRecord(ctx context.Context, rec *models.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records[rec.ID] = &cp
	return nil
}

func (f *fakeStore) GetRecord(ctx context.Context, id, userID string) (*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok || rec.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeStore) ListRecordsByUser(ctx context.Context, userID string) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeStore) SetRecordFileURL(ctx context.Context, id, userID, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok || rec.UserID != userID {
		return store.ErrNotFound
	}
	rec.FileURL = fileURL
	return nil
}

/* ---- blog / testimonials ---- */

func (f *fakeStore) ListPublishedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	return nil, nil
}

func (f *fakeStore) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.Approved = false
	cp := *t
	f.testimonials[t.ID] = &cp
	return nil
}

func (f *fakeStore) ListApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Testimonial
	for _, t := range f.testimonials {
		if t.Approved {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) ApproveTestimonial(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.testimonials[id]
	if !ok {
		return store.ErrNotFound
	}
	t.Approved = true
	return nil
}

/* ---- admin ---- */

func (f *fakeStore) ListUsersPage(ctx context.Context, page, limit int, role string) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if role == "" || string(u.Role) == role {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) GetAdminStats(ctx context.Context) (*store.AdminStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.stats
	st.TotalUsers = int64(len(f.users))
	for _, u := range f.users {
		switch u.Role {
		case models.RoleStudent:
			st.Students++
		case models.RoleProfessional:
			st.Professionals++
		}
	}
	st.Resumes = int64(len(f.resumes))
	return &st, nil
}

func (f *fakeStore) ListRecentContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	return nil, nil
}

func (f *fakeStore) UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) error {
	return store.ErrNotFound
}

func (f *fakeStore) CreateBlogPost(ctx context.Context, p *models.BlogPost) error {
	return nil
}

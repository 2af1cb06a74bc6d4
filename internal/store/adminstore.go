package store

import (
	"context"

	"github.com/ddsolutions/careers-api/internal/models"
)

// ListUsersPage returns one page of users, optionally filtered by role,
// newest first, plus the total for the same filter. Skip/limit only; the
// password hash never serializes (json:"-").
func (s *Store) ListUsersPage(ctx context.Context, page, limit int, role string) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	q := s.DB.WithContext(ctx).Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error
	return users, total, err
}

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	TotalUsers     int64 `json:"total_users"`
	Students       int64 `json:"students"`
	Professionals  int64 `json:"professionals"`
	Contacts       int64 `json:"contacts"`
	NewContacts    int64 `json:"new_contacts"`
	NewsletterSubs int64 `json:"newsletter_subs"`
	Resumes        int64 `json:"resumes"`
}

func (s *Store) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	st := &AdminStats{}
	db := s.DB.WithContext(ctx)

	counts := []struct {
		dst   *int64
		model interface{}
		cond  []interface{}
	}{
		{&st.TotalUsers, &models.User{}, nil},
		{&st.Students, &models.User{}, []interface{}{"role = ?", models.RoleStudent}},
		{&st.Professionals, &models.User{}, []interface{}{"role = ?", models.RoleProfessional}},
		{&st.Contacts, &models.Contact{}, nil},
		{&st.NewContacts, &models.Contact{}, []interface{}{"status = ?", models.ContactStatusNew}},
		{&st.NewsletterSubs, &models.NewsletterSubscriber{}, nil},
		{&st.Resumes, &models.Resume{}, nil},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.cond != nil {
			q = q.Where(c.cond[0], c.cond[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return st, nil
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateResume(ctx context.Context, r *models.Resume) error {
	r.Version = 1
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(r).Error
}

// ListResumesByUser is owner-scoped: a caller only ever sees their own
// resumes.
func (s *Store) ListResumesByUser(ctx context.Context, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

// GetResume fetches a single resume scoped by owner; an id belonging to
// someone else resolves to ErrNotFound, same as a missing one.
func (s *Store) GetResume(ctx context.Context, id, userID string) (*models.Resume, error) {
	var r models.Resume
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateResume applies the field update, bumps version and refreshes
// updated_at in one UPDATE scoped by id AND owner. The version increment
// is the only optimistic-concurrency signal: concurrent writers may
// overwrite each other's fields, but version strictly increases, so a
// lost update is detectable afterwards. Returns ErrNotFound when the id
// does not exist for this owner.
func (s *Store) UpdateResume(ctx context.Context, id, userID string, fields map[string]interface{}) error {
	fields["version"] = gorm.Expr("version + 1")
	fields["updated_at"] = time.Now()
	res := s.DB.WithContext(ctx).Model(&models.Resume{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CountResumes(ctx context.Context) (int64, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).Model(&models.Resume{}).Count(&cnt).Error
	return cnt, err
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"gorm.io/gorm"
)

/* ------------------ User CRUD ------------------ */

// CreateUser inserts a new account row. A duplicate-key error can come
// from the email unique index or from a collision on the generated id;
// only the former is ErrEmailExists, the latter is returned as-is so the
// caller can retry with a fresh id.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.DB.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		cnt, cntErr := s.CountUsersByEmail(ctx, u.Email)
		if cntErr != nil {
			return cntErr
		}
		if cnt > 0 {
			return ErrEmailExists
		}
		return err
	}
	return err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// CountUsersByEmail supports the pre-insert uniqueness check. The unique
// index remains the real invariant; this only makes the common case a 409
// before the insert is attempted.
func (s *Store) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	var cnt int64
	err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

// UpdateUserFields applies a partial update to profile fields. Role, id
// and password_hash are never in the allowed set built by callers.
func (s *Store) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

/* ------------------ Progress (upsert semantics) ------------------ */

func (s *Store) GetProgressByUser(ctx context.Context, userID string) (*models.ProgressReport, error) {
	var p models.ProgressReport
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProgress updates the owner's progress row; when no row matched it
// inserts a fresh one carrying the same owner id and applies the fields
// to it. A concurrent first write can land between the update and the
// insert; losing that race on the user_id unique index just means the
// row now exists, so fall through to the update.
func (s *Store) UpsertProgress(ctx context.Context, userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	res := s.DB.WithContext(ctx).Model(&models.ProgressReport{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	p := models.ProgressReport{UserID: userID, UpdatedAt: time.Now()}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return s.DB.WithContext(ctx).Model(&models.ProgressReport{}).Where("user_id = ?", userID).Updates(fields).Error
}

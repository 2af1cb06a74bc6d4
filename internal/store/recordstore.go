package store

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateRecord(ctx context.Context, rec *models.Record) error {
	rec.CreatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(rec).Error
}

func (s *Store) ListRecordsByUser(ctx context.Context, userID string) ([]models.Record, error) {
	var records []models.Record
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (s *Store) GetRecord(ctx context.Context, id, userID string) (*models.Record, error) {
	var rec models.Record
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// SetRecordFileURL attaches an uploaded object key to an owner-scoped
// record. Zero rows affected means the record is not the caller's.
func (s *Store) SetRecordFileURL(ctx context.Context, id, userID, fileURL string) error {
	res := s.DB.WithContext(ctx).Model(&models.Record{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("file_url", fileURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

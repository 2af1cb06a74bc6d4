package store

import (
	"context"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
)

func (s *Store) CreateMentorSession(ctx context.Context, ms *models.MentorSession) error {
	ms.Status = models.SessionStatusBooked
	ms.CreatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(ms).Error
}

func (s *Store) ListSessionsByStudent(ctx context.Context, studentID string) ([]models.MentorSession, error) {
	var sessions []models.MentorSession
	err := s.DB.WithContext(ctx).Where("student_id = ?", studentID).
		Order("scheduled_at DESC").Find(&sessions).Error
	return sessions, err
}

// UpdateSessionStatus is student-scoped: only the booking student can
// move their session to completed/cancelled.
func (s *Store) UpdateSessionStatus(ctx context.Context, id, studentID string, status models.SessionStatus) error {
	res := s.DB.WithContext(ctx).Model(&models.MentorSession{}).
		Where("id = ? AND student_id = ?", id, studentID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
	"gorm.io/gorm"
)

func (s *Store) CreateContact(ctx context.Context, c *models.Contact) error {
	c.Status = models.ContactStatusNew
	c.CreatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(c).Error
}

// ListRecentContacts returns the latest submissions, newest first.
func (s *Store) ListRecentContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&contacts).Error
	return contacts, err
}

func (s *Store) UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) error {
	res := s.DB.WithContext(ctx).Model(&models.Contact{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ------------------ Newsletter ------------------ */

func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	var sub models.NewsletterSubscriber
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// SubscribeNewsletter is idempotent from the caller's point of view. An
// existing subscriber is detected before the insert; a concurrent
// duplicate insert loses to the unique index and is treated the same as
// "already subscribed".
func (s *Store) SubscribeNewsletter(ctx context.Context, email, name string) (bool, error) {
	if _, err := s.GetSubscriberByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	sub := models.NewsletterSubscriber{Email: email, Name: name, SubscribedAt: time.Now()}
	err := s.DB.WithContext(ctx).Create(&sub).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package store

import (
	"context"
	"time"

	"github.com/ddsolutions/careers-api/internal/models"
)

func (s *Store) CreateBlogPost(ctx context.Context, p *models.BlogPost) error {
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(p).Error
}

// ListPublishedPosts returns the latest published posts, newest first.
func (s *Store) ListPublishedPosts(ctx context.Context, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.DB.WithContext(ctx).Where("published = ?", true).
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

/* ------------------ Testimonials ------------------ */

func (s *Store) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	t.Approved = false // every submission waits for review
	t.CreatedAt = time.Now()
	return s.DB.WithContext(ctx).Create(t).Error
}

func (s *Store) ListApprovedTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	var items []models.Testimonial
	err := s.DB.WithContext(ctx).Where("approved = ?", true).
		Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (s *Store) ApproveTestimonial(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Testimonial{}).Where("id = ?", id).Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

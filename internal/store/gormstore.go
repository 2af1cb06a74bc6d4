package store

import (
	"context"
	"errors"
	"time"

	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store-level error taxonomy, mapped to HTTP statuses at the handler
// boundary.
var (
	ErrEmailExists = errors.New("email already registered")
	ErrNotFound    = errors.New("not found")
)

type Store struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewGormStore(cfg *config.Config) (*Store, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, err
	}
	// AutoMigrate (non-destructive: creates tables/columns/indexes)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Resume{},
		&models.Record{},
		&models.ProgressReport{},
		&models.Contact{},
		&models.NewsletterSubscriber{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.MentorSession{},
	); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Pooling sensible defaults for small VPS (tune later)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &Store{DB: db, Cfg: cfg}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

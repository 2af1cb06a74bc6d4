package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	v1 "github.com/ddsolutions/careers-api/internal/api/v1"
	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/mailer"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type Server struct {
	cfg *config.Config
	db  *store.Store
}

func NewServer(cfg *config.Config, db *store.Store) *Server {
	return &Server{cfg: cfg, db: db}
}

func (s *Server) NewHTTPServer() *http.Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var storage *utils.R2Storage
	if s.cfg.R2AccessKeyID != "" {
		storage = utils.NewR2Storage(s.cfg.R2AccessKeyID, s.cfg.R2SecretAccessKey, s.cfg.R2Endpoint, s.cfg.R2BucketName)
	}
	var m *mailer.Mailer
	if s.cfg.SMTPHost != "" {
		m = mailer.New(s.cfg)
	}

	api := v1.NewAPI(s.cfg, s.db, m, storage)
	r.Mount("/api", api.Routes())

	return &http.Server{
		Addr:         s.cfg.BindAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

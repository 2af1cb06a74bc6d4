package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ddsolutions/careers-api/internal/auth"
	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/mailer"
	"github.com/ddsolutions/careers-api/internal/models"
	"github.com/ddsolutions/careers-api/internal/service"
	"github.com/ddsolutions/careers-api/internal/store"
	"github.com/ddsolutions/careers-api/internal/utils"
)

type API struct {
	cfg     *config.Config
	router  *chi.Mux
	store   *store.Store
	mailer  *mailer.Mailer
	storage *utils.R2Storage
}

func NewAPI(cfg *config.Config, s *store.Store, m *mailer.Mailer, storage *utils.R2Storage) *API {
	api := &API{cfg: cfg, router: chi.NewRouter(), store: s, mailer: m, storage: storage}
	api.router.Use(middleware.RequestID)
	api.router.Use(middleware.Logger)
	api.router.Use(middleware.Recoverer)
	api.routes()
	return api
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

func (a *API) routes() {
	usvc := service.NewUserService(a.store)

	var objStorage objectStorage
	if a.storage != nil {
		objStorage = a.storage
	}
	var notify notifier
	if a.mailer != nil {
		notify = a.mailer
	}

	authH := NewAuthHandler(a.cfg, usvc, a.store)
	userH := NewUserHandler(a.store)
	resumeH := NewResumeHandler(a.store)
	recordH := NewRecordHandler(a.store, objStorage)
	contactH := NewContactHandler(a.cfg, a.store, notify)
	adminH := NewAdminHandler(a.store)
	blogH := NewBlogHandler(a.store)
	sessionH := NewSessionHandler(a.store)

	authed := auth.AuthMiddleware(a.cfg, a.store)

	r := a.router

	r.Route("/auth", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/google", authH.GoogleSignIn)
	})

	r.Route("/user", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Get("/profile", userH.GetProfile)
			r.Put("/profile", userH.UpdateProfile)
			r.Get("/progress", userH.GetProgress)
			r.Put("/progress", userH.UpdateProgress)
		})
	})

	r.Route("/resume", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Get("/", resumeH.ListResumes)
			r.Post("/", resumeH.CreateResume)
			r.Get("/{id}", resumeH.GetResume)
			r.Put("/{id}", resumeH.UpdateResume)
		})
	})

	r.Route("/records", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Get("/", recordH.ListRecords)
			r.Post("/", recordH.AddRecord)
			r.Get("/{id}", recordH.GetRecord)
			r.Post("/{id}/attachment", recordH.UploadAttachment)
		})
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Get("/", sessionH.ListSessions)
			r.Post("/", sessionH.BookSession)
			r.Put("/{id}", sessionH.UpdateSession)
		})
	})

	// public capture routes
	r.Post("/contact", contactH.SubmitContact)
	r.Post("/newsletter/subscribe", contactH.Subscribe)

	// public reads
	r.Get("/blog", blogH.ListPosts)
	r.Get("/testimonials", blogH.ListTestimonials)
	r.With(authed).Post("/testimonials", blogH.SubmitTestimonial)

	r.Route("/admin", func(r chi.Router) {
		r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Use(auth.RoleMiddleware(models.RoleAdmin))
			r.Get("/users", adminH.ListUsers)
			r.Get("/stats", adminH.GetStats)
			r.Get("/contacts", adminH.ListContacts)
			r.Put("/contacts/{id}", adminH.UpdateContact)
			r.Post("/blog", adminH.CreateBlogPost)
			r.Post("/testimonials/{id}/approve", adminH.ApproveTestimonial)
		})
	})

	r.Get("/health", HealthHandler(a.store))
}

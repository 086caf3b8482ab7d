package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/announcement"
	"github.com/sakshigoud44/back2campus/internal/auth"
	"github.com/sakshigoud44/back2campus/internal/department"
	"github.com/sakshigoud44/back2campus/internal/transport"
	"github.com/sakshigoud44/back2campus/internal/transport/middleware"
	"github.com/sakshigoud44/back2campus/internal/transport/swagger"
)

type welcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// RegisterAllRoutes wires the HTTP surface. Unmatched paths and methods fall
// through to the same 404 envelope every other failure uses.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, departmentHandler *department.Handler, announcementHandler *announcement.Handler, cfg internal.ServerConfig, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	base := transport.NewBaseHandler(logger)

	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		base.HandleServiceError(w, internal.ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		base.HandleServiceError(w, internal.ErrRouteNotFound)
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		base.WriteData(w, http.StatusOK, welcomeResponse{
			Message: "Welcome to the Back2Campus API",
			Version: "1.0.0",
		})
	})

	router.Get("/health", healthHandler.healthCheckHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		if cfg.RateLimitPerSec > 0 {
			r.Use(middleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
		}

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Get("/profile", authHandler.GetProfile)
				pr.Put("/profile", authHandler.UpdateProfile)
			})
		})

		r.Route("/announcements", func(sr chi.Router) {
			sr.Get("/", announcementHandler.GetAnnouncements)
			sr.Get("/{id}", announcementHandler.GetAnnouncement)

			sr.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)
				pr.Post("/", announcementHandler.CreateAnnouncement)
			})
		})

		r.Route("/departments", func(sr chi.Router) {
			sr.Get("/", departmentHandler.GetDepartments)
			sr.Post("/", departmentHandler.CreateDepartment)
		})
	})
}

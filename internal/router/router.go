package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/MoodinAhmed1/classicet/internal/auth"
	"github.com/MoodinAhmed1/classicet/internal/handlers"
	"github.com/MoodinAhmed1/classicet/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, a *auth.Auth, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Публичная поверхность
	r.Get("/ping", handler.Ping)
	r.Get("/{code}", handler.Redirect)

	// Аутентификация: ограничение частоты против перебора паролей
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, 1*time.Minute))
		r.Post("/api/auth/register", handler.Register)
		r.Post("/api/auth/login", handler.Login)
	})

	// Личный кабинет
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(a))

		r.Post("/api/links", handler.CreateLink)
		r.Get("/api/links", handler.ListLinks)
		r.Get("/api/links/{id}", handler.GetLink)
		r.Patch("/api/links/{id}", handler.UpdateLink)
		r.Delete("/api/links/{id}", handler.DeleteLink)
		r.Get("/api/links/{id}/analytics", handler.LinkAnalytics)

		r.Get("/api/user/profile", handler.Profile)
		r.Put("/api/user/profile", handler.UpdateProfile)

		r.Post("/api/domains", handler.CreateDomain)
		r.Get("/api/domains", handler.ListDomains)
		r.Post("/api/domains/{id}/verify", handler.VerifyDomain)
		r.Delete("/api/domains/{id}", handler.DeleteDomain)

		// Административная консоль
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/api/admin/users", handler.AdminListUsers)
			r.Put("/api/admin/users/{id}/tier", handler.AdminSetTier)
			r.Post("/api/admin/links/{id}/deactivate", handler.AdminDeactivateLink)
			r.Get("/api/admin/stats", handler.AdminStats)
		})
	})

	return r
}

// Package magazineservice предоставляет маршруты и жизненный цикл основного приложения.
package magazineservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/deactivate"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/auth/resetpassword"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/health"
	magazinecreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/create"
	magazinelist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/list"
	magazineread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/read"
	magazineremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/remove"
	magazineupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/magazine/update"
	plancreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/read"
	planremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/plan/update"
	subcreate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/list"
	subread "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/read"
	subremove "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/remove"
	subupdate "github.com/magabrotheeeer/magazine-subscription-service/internal/http/handlers/subscription/update"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/catalog"
	subservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/subscription"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	auth *authservice.AuthService,
	catalog *catalogservice.CatalogService,
	subscriptions *subservice.SubscriptionService,
	storage *repository.Storage,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := middlewarectx.NewRateLimiter(10, 20)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, auth).ServeHTTP)
		r.Post("/login", login.New(logger, auth).ServeHTTP)
		r.Post("/token/refresh", refresh.New(logger, auth).ServeHTTP)

		r.Get("/magazines", magazinelist.New(logger, catalog).ServeHTTP)
		r.Get("/magazines/{id}", magazineread.New(logger, catalog).ServeHTTP)
		r.Get("/plans", planlist.New(logger, catalog).ServeHTTP)
		r.Get("/plans/{id}", planread.New(logger, catalog).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(auth, logger))
			r.Use(limiter.Middleware)

			r.Get("/users/me", me.New(logger, auth).ServeHTTP)
			r.Delete("/users/me", deactivate.New(logger, auth).ServeHTTP)
			r.Post("/users/password/reset", resetpassword.New(logger, auth).ServeHTTP)

			r.Post("/magazines", magazinecreate.New(logger, catalog).ServeHTTP)
			r.Put("/magazines/{id}", magazineupdate.New(logger, catalog).ServeHTTP)
			r.Delete("/magazines/{id}", magazineremove.New(logger, catalog).ServeHTTP)

			r.Post("/plans", plancreate.New(logger, catalog).ServeHTTP)
			r.Put("/plans/{id}", planupdate.New(logger, catalog).ServeHTTP)
			r.Delete("/plans/{id}", planremove.New(logger, catalog).ServeHTTP)

			r.Post("/subscriptions", subcreate.New(logger, subscriptions).ServeHTTP)
			r.Get("/subscriptions", sublist.New(logger, subscriptions).ServeHTTP)
			r.Get("/subscriptions/{id}", subread.New(logger, subscriptions).ServeHTTP)
			subUpdate := subupdate.New(logger, subscriptions)
			r.Put("/subscriptions/{id}", subUpdate.ServeHTTP)
			r.Patch("/subscriptions/{id}", subUpdate.ServeHTTP)
			r.Delete("/subscriptions/{id}", subremove.New(logger, subscriptions).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, storage).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

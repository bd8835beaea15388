package magazineservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/cache"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/config"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/migrations"
	authservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/catalog"
	subservice "github.com/magabrotheeeer/magazine-subscription-service/internal/services/subscription"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// App объединяет HTTP-сервер, хранилище и кеш приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: подключает базу, применяет миграции,
// инициализирует Redis, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.Tokens.JWTSecretKey, cfg.Tokens.AccessTokenTTL)

	auth := authservice.NewAuthService(db, jwtMaker, cacheRedis, cfg.Tokens.RefreshTokenTTL)
	catalog := catalogservice.NewCatalogService(db, db, logger)
	subscriptions := subservice.NewSubscriptionService(db, db, catalog, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, auth, catalog, subscriptions, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста
// или фатальной ошибки сервера. При отмене выполняет graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}

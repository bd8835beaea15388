// Package services содержит бизнес-логику жизненного цикла подписок, включая кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/renewal"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error)
	// ReadSubscription возвращает подписку по ID.
	ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	// ListSubscriptions возвращает список подписок пользователя с пагинацией.
	ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]*models.Subscription, error)
	// UpdateSubscription перезаписывает изменяемые поля активной подписки.
	UpdateSubscription(ctx context.Context, sub models.Subscription, id int64) (int, error)
	// DeactivateSubscription снимает флаг активности и возвращает число затронутых строк.
	DeactivateSubscription(ctx context.Context, id int64) (int, error)
}

// UserReader читает пользователя, от имени которого оформляется подписка.
type UserReader interface {
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// CatalogReader читает журналы и планы, на которые ссылается подписка.
type CatalogReader interface {
	// ReadMagazine возвращает журнал по ID.
	ReadMagazine(ctx context.Context, id int64) (*models.Magazine, error)
	// ReadPlan возвращает план по ID.
	ReadPlan(ctx context.Context, id int64) (*models.Plan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует жизненный цикл подписки:
// создание, чтение, обновление и одностороннюю деактивацию.
type SubscriptionService struct {
	repo    SubscriptionRepository
	users   UserReader
	catalog CatalogReader
	cache   Cache
	log     *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, users UserReader, catalog CatalogReader, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:    repo,
		users:   users,
		catalog: catalog,
		cache:   cache,
		log:     log,
	}
}

// Create создаёт подписку пользователя на журнал по выбранному плану.
// Пользователь, журнал и план разрешаются до вставки; деактивированный
// пользователь оформить подписку не может. Цена продления считается
// из базовой цены журнала и скидки, соответствующей периоду плана, дата
// следующего продления — от сегодняшнего дня плюс период плана.
func (s *SubscriptionService) Create(ctx context.Context, userID int64, req models.DummySubscription) (int64, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !user.IsActive {
		return 0, fmt.Errorf("user %d is inactive: %w", userID, repository.ErrNotFound)
	}

	magazine, err := s.catalog.ReadMagazine(ctx, req.MagazineID)
	if err != nil {
		return 0, err
	}
	plan, err := s.catalog.ReadPlan(ctx, req.PlanID)
	if err != nil {
		return 0, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	sub := models.Subscription{
		UserID:     userID,
		MagazineID: magazine.ID,
		PlanID:     plan.ID,
		Price:      req.Price,
		PriceAtRenewal: renewal.PriceAtRenewal(magazine.BasePrice, plan.RenewalPeriod,
			magazine.DiscountQuarterly, magazine.DiscountHalfYearly, magazine.DiscountAnnual),
		NextRenewalDate: renewal.NextDate(today, plan.RenewalPeriod),
		IsActive:        true,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new subscription", slog.Int64("id", id))

	sub.ID = id
	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return id, nil
}

// Read возвращает подписку по ID, используя кеш или хранилище.
func (s *SubscriptionService) Read(ctx context.Context, id int64) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает список подписок пользователя с пагинацией.
func (s *SubscriptionService) List(ctx context.Context, userID int64, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, userID, limit, offset)
}

// Update применяет явный patch к активной подписке: цену, план и дату
// следующего продления. Смена плана пересчитывает цену продления.
// Неактивная подписка не обновляется и не может быть оживлена этим путём.
func (s *SubscriptionService) Update(ctx context.Context, id int64, patch models.SubscriptionPatch) (int, error) {
	sub, err := s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return 0, err
	}
	if !sub.IsActive {
		return 0, fmt.Errorf("subscription %d is inactive: %w", id, repository.ErrNotFound)
	}

	if patch.Price != nil {
		sub.Price = *patch.Price
	}
	if patch.PlanID != nil && *patch.PlanID != sub.PlanID {
		plan, err := s.catalog.ReadPlan(ctx, *patch.PlanID)
		if err != nil {
			return 0, err
		}
		magazine, err := s.catalog.ReadMagazine(ctx, sub.MagazineID)
		if err != nil {
			return 0, err
		}
		sub.PlanID = plan.ID
		sub.PriceAtRenewal = renewal.PriceAtRenewal(magazine.BasePrice, plan.RenewalPeriod,
			magazine.DiscountQuarterly, magazine.DiscountHalfYearly, magazine.DiscountAnnual)
	}
	if patch.NextRenewalDate != nil {
		sub.NextRenewalDate = *patch.NextRenewalDate
	}

	res, err := s.repo.UpdateSubscription(ctx, *sub, id)
	if err != nil {
		return 0, err
	}
	if res == 0 {
		return 0, fmt.Errorf("subscription %d: %w", id, repository.ErrNotFound)
	}
	s.log.Info("updated subscription in storage", slog.Int64("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Deactivate снимает флаг активности подписки. Переход односторонний,
// повторная деактивация даёт тот же наблюдаемый результат без ошибки.
func (s *SubscriptionService) Deactivate(ctx context.Context, id int64) error {
	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.DeactivateSubscription(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("subscription %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

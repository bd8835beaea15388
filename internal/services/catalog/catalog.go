// Package services содержит бизнес-логику каталога: журналы и планы продления.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// ErrInvalidRenewalPeriod — период продления плана должен быть больше нуля.
var ErrInvalidRenewalPeriod = errors.New("renewal period must be greater than zero")

// MagazineRepository определяет методы для работы с журналами в хранилище.
type MagazineRepository interface {
	// CreateMagazine добавляет новый журнал и возвращает его ID.
	CreateMagazine(ctx context.Context, m models.Magazine) (int64, error)
	// ReadMagazine возвращает журнал по ID.
	ReadMagazine(ctx context.Context, id int64) (*models.Magazine, error)
	// ListMagazines возвращает список журналов с пагинацией.
	ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error)
	// UpdateMagazine обновляет данные журнала по ID.
	UpdateMagazine(ctx context.Context, m models.Magazine, id int64) (int, error)
	// RemoveMagazine удаляет журнал; блокируется активными подписками.
	RemoveMagazine(ctx context.Context, id int64) error
}

// PlanRepository определяет методы для работы с планами в хранилище.
type PlanRepository interface {
	// CreatePlan добавляет новый план и возвращает его ID.
	CreatePlan(ctx context.Context, p models.Plan) (int64, error)
	// ReadPlan возвращает план по ID.
	ReadPlan(ctx context.Context, id int64) (*models.Plan, error)
	// ListPlans возвращает список планов с пагинацией.
	ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error)
	// UpdatePlan обновляет данные плана по ID.
	UpdatePlan(ctx context.Context, p models.Plan, id int64) (int, error)
	// RemovePlan удаляет план; блокируется активными подписками.
	RemovePlan(ctx context.Context, id int64) error
}

// CatalogService реализует операции каталога журналов и планов.
type CatalogService struct {
	magazines MagazineRepository
	plans     PlanRepository
	log       *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(magazines MagazineRepository, plans PlanRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{
		magazines: magazines,
		plans:     plans,
		log:       log,
	}
}

// CreateMagazine добавляет журнал в каталог и возвращает его ID.
func (s *CatalogService) CreateMagazine(ctx context.Context, req models.DummyMagazine) (int64, error) {
	m := models.Magazine{
		Name:               req.Name,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		DiscountQuarterly:  req.DiscountQuarterly,
		DiscountHalfYearly: req.DiscountHalfYearly,
		DiscountAnnual:     req.DiscountAnnual,
	}
	id, err := s.magazines.CreateMagazine(ctx, m)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new magazine", slog.Int64("id", id))
	return id, nil
}

// ReadMagazine возвращает журнал по ID.
func (s *CatalogService) ReadMagazine(ctx context.Context, id int64) (*models.Magazine, error) {
	return s.magazines.ReadMagazine(ctx, id)
}

// ListMagazines возвращает список журналов с пагинацией.
func (s *CatalogService) ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error) {
	return s.magazines.ListMagazines(ctx, limit, offset)
}

// UpdateMagazine обновляет журнал по ID и возвращает количество изменённых строк.
func (s *CatalogService) UpdateMagazine(ctx context.Context, req models.DummyMagazine, id int64) (int, error) {
	m := models.Magazine{
		Name:               req.Name,
		Description:        req.Description,
		BasePrice:          req.BasePrice,
		DiscountQuarterly:  req.DiscountQuarterly,
		DiscountHalfYearly: req.DiscountHalfYearly,
		DiscountAnnual:     req.DiscountAnnual,
	}
	return s.magazines.UpdateMagazine(ctx, m, id)
}

// RemoveMagazine удаляет журнал. Пока на журнал ссылаются активные подписки,
// хранилище возвращает ErrHasActiveSubscriptions и удаление не выполняется.
func (s *CatalogService) RemoveMagazine(ctx context.Context, id int64) error {
	return s.magazines.RemoveMagazine(ctx, id)
}

// CreatePlan добавляет план продления и возвращает его ID.
// План с нулевым периодом продления отклоняется.
func (s *CatalogService) CreatePlan(ctx context.Context, req models.DummyPlan) (int64, error) {
	if req.RenewalPeriod <= 0 {
		return 0, ErrInvalidRenewalPeriod
	}
	p := models.Plan{
		Title:         req.Title,
		Description:   req.Description,
		RenewalPeriod: req.RenewalPeriod,
	}
	id, err := s.plans.CreatePlan(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new plan", slog.Int64("id", id))
	return id, nil
}

// ReadPlan возвращает план по ID.
func (s *CatalogService) ReadPlan(ctx context.Context, id int64) (*models.Plan, error) {
	return s.plans.ReadPlan(ctx, id)
}

// ListPlans возвращает список планов с пагинацией.
func (s *CatalogService) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	return s.plans.ListPlans(ctx, limit, offset)
}

// UpdatePlan обновляет план по ID и возвращает количество изменённых строк.
func (s *CatalogService) UpdatePlan(ctx context.Context, req models.DummyPlan, id int64) (int, error) {
	if req.RenewalPeriod <= 0 {
		return 0, ErrInvalidRenewalPeriod
	}
	p := models.Plan{
		Title:         req.Title,
		Description:   req.Description,
		RenewalPeriod: req.RenewalPeriod,
	}
	return s.plans.UpdatePlan(ctx, p, id)
}

// RemovePlan удаляет план. Как и для журналов, активные подписки блокируют удаление.
func (s *CatalogService) RemovePlan(ctx context.Context, id int64) error {
	return s.plans.RemovePlan(ctx, id)
}

package models

import "time"

// Subscription связывает пользователя, журнал и план продления.
// Деактивация выполняется через флаг IsActive и необратима:
// строка сохраняется ради истории.
type Subscription struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	MagazineID      int64     `json:"magazine_id"`
	PlanID          int64     `json:"plan_id"`
	Price           float64   `json:"price"`
	PriceAtRenewal  float64   `json:"price_at_renewal"`
	NextRenewalDate time.Time `json:"next_renewal_date"`
	IsActive        bool      `json:"is_active"`
}

// DummySubscription используется для приёма данных новой подписки из JSON-запроса.
// Ссылки на журнал и план проверяются при создании, цена продления
// и дата следующего продления вычисляются сервисом.
type DummySubscription struct {
	MagazineID int64   `json:"magazine_id" validate:"required,gt=0"`
	PlanID     int64   `json:"plan_id" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"required,gt=0"`
}

// SubscriptionPatch описывает явный контракт обновления подписки:
// меняются только перечисленные поля, nil означает "не трогать".
// Флаг активности через обновление недоступен.
type SubscriptionPatch struct {
	Price           *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	PlanID          *int64     `json:"plan_id,omitempty" validate:"omitempty,gt=0"`
	NextRenewalDate *time.Time `json:"next_renewal_date,omitempty"`
}

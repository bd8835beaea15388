package models

// Plan — шаблон периода продления подписки (месячный, квартальный и т.д.).
// Справочные данные, меняются редко.
type Plan struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	RenewalPeriod int    `json:"renewal_period"` // Период продления в месяцах, всегда > 0
}

// DummyPlan используется для приёма данных плана из JSON-запроса.
// Нулевой период продления отклоняется валидацией.
type DummyPlan struct {
	Title         string `json:"title" validate:"required,min=1,max=100"`
	Description   string `json:"description" validate:"required,max=200"`
	RenewalPeriod int    `json:"renewal_period" validate:"required,gt=0"`
}

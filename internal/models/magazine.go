package models

// Magazine представляет журнал из каталога.
// Скидки заданы долями от единицы и применяются к базовой цене
// в зависимости от периода продления плана.
type Magazine struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	BasePrice          float64 `json:"base_price"`
	DiscountQuarterly  float64 `json:"discount_quarterly"`
	DiscountHalfYearly float64 `json:"discount_half_yearly"`
	DiscountAnnual     float64 `json:"discount_annual"`
}

// DummyMagazine используется для приёма данных журнала из JSON-запроса.
type DummyMagazine struct {
	Name               string  `json:"name" validate:"required,min=1,max=100"`
	Description        string  `json:"description" validate:"required,max=200"`
	BasePrice          float64 `json:"base_price" validate:"required,gt=0"`
	DiscountQuarterly  float64 `json:"discount_quarterly" validate:"gte=0,lt=1"`
	DiscountHalfYearly float64 `json:"discount_half_yearly" validate:"gte=0,lt=1"`
	DiscountAnnual     float64 `json:"discount_annual" validate:"gte=0,lt=1"`
}

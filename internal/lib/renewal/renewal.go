// Package renewal содержит расчёты дат и цен продления подписки.
package renewal

import (
	"time"
)

// NextDate возвращает дату следующего продления: from плюс periodMonths месяцев.
func NextDate(from time.Time, periodMonths int) time.Time {
	return from.AddDate(0, periodMonths, 0)
}

// Discount выбирает скидку журнала по длине периода продления в месяцах.
// Известные периоды: 3 — квартальная, 6 — полугодовая, 12 — годовая.
// Для остальных периодов скидка не применяется.
func Discount(periodMonths int, quarterly, halfYearly, annual float64) float64 {
	switch periodMonths {
	case 3:
		return quarterly
	case 6:
		return halfYearly
	case 12:
		return annual
	default:
		return 0
	}
}

// PriceAtRenewal считает цену продления: базовая цена журнала
// за вычетом скидки, соответствующей периоду плана.
func PriceAtRenewal(basePrice float64, periodMonths int, quarterly, halfYearly, annual float64) float64 {
	d := Discount(periodMonths, quarterly, halfYearly, annual)
	if d <= 0 {
		return basePrice
	}
	if d >= 1 {
		return 0
	}
	return basePrice * (1 - d)
}

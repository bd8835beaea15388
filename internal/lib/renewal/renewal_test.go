package renewal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDate(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "месячный план",
			from:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "годовой план через границу года",
			from:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			months:   12,
			expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "квартальный план",
			from:     time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextDate(tt.from, tt.months))
		})
	}
}

func TestPriceAtRenewal(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		months   int
		expected float64
	}{
		{name: "месячный период без скидки", base: 100, months: 1, expected: 100},
		{name: "квартальная скидка", base: 100, months: 3, expected: 90},
		{name: "полугодовая скидка", base: 100, months: 6, expected: 85},
		{name: "годовая скидка", base: 100, months: 12, expected: 75},
		{name: "неизвестный период", base: 100, months: 7, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceAtRenewal(tt.base, tt.months, 0.10, 0.15, 0.25)
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}

func TestPriceAtRenewal_DegenerateDiscounts(t *testing.T) {
	// скидка 100% и больше обнуляет цену, отрицательная игнорируется
	assert.Equal(t, 0.0, PriceAtRenewal(100, 12, 0, 0, 1.0))
	assert.Equal(t, 100.0, PriceAtRenewal(100, 3, -0.5, 0, 0))
}

package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"basera/internal/domains/pricing/model"
	"basera/internal/domains/pricing/service"
	gModel "basera/shared/model"
)

func rule(id string, start, end int, multiplier string, active bool, createdAt time.Time) model.PricingRule {
	return model.PricingRule{
		ID:              id,
		Name:            id,
		StartMonth:      start,
		EndMonth:        end,
		PriceMultiplier: decimal.RequireFromString(multiplier),
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt: createdAt,
		},
	}
}

func TestSelectRule(t *testing.T) {
	older := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rules  []model.PricingRule
		month  time.Month
		wantID string
	}{
		{
			name:   "no rules",
			rules:  nil,
			month:  time.May,
			wantID: "",
		},
		{
			name:   "month outside every season",
			rules:  []model.PricingRule{rule("summer", 4, 6, "1.10", true, older)},
			month:  time.September,
			wantID: "",
		},
		{
			name:   "covering season selected",
			rules:  []model.PricingRule{rule("summer", 4, 6, "1.10", true, older)},
			month:  time.May,
			wantID: "summer",
		},
		{
			name: "inactive rules are skipped",
			rules: []model.PricingRule{
				rule("retired", 4, 6, "1.50", false, newer),
				rule("summer", 4, 6, "1.10", true, older),
			},
			month:  time.May,
			wantID: "summer",
		},
		{
			name: "highest multiplier wins on overlap",
			rules: []model.PricingRule{
				rule("summer", 4, 6, "1.10", true, newer),
				rule("exam-season", 5, 5, "1.25", true, older),
			},
			month:  time.May,
			wantID: "exam-season",
		},
		{
			name: "equal multipliers fall to the most recent rule",
			rules: []model.PricingRule{
				rule("old", 4, 6, "1.10", true, older),
				rule("new", 5, 5, "1.10", true, newer),
			},
			month:  time.May,
			wantID: "new",
		},
		{
			name:   "season wrapping the year boundary covers both ends",
			rules:  []model.PricingRule{rule("winter", 11, 2, "1.05", true, older)},
			month:  time.January,
			wantID: "winter",
		},
		{
			name:   "wrapping season excludes the gap months",
			rules:  []model.PricingRule{rule("winter", 11, 2, "1.05", true, older)},
			month:  time.June,
			wantID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.SelectRule(tt.rules, tt.month)

			if tt.wantID == "" {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestEffectiveRent(t *testing.T) {
	createdAt := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	baseRent := decimal.RequireFromString("10000")

	tests := []struct {
		name  string
		rules []model.PricingRule
		month time.Month
		want  string
	}{
		{
			name:  "multiplier applied and rounded to currency precision",
			rules: []model.PricingRule{rule("summer", 4, 6, "1.10", true, createdAt)},
			month: time.May,
			want:  "11000",
		},
		{
			name:  "no covering rule charges the base rent",
			rules: []model.PricingRule{rule("summer", 4, 6, "1.10", true, createdAt)},
			month: time.September,
			want:  "10000",
		},
		{
			name:  "fractional result rounds half up",
			rules: []model.PricingRule{rule("odd", 1, 12, "1.005", true, createdAt)},
			month: time.May,
			want:  "10050",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := service.EffectiveRent(baseRent, tt.rules, tt.month)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestMultiplier(t *testing.T) {
	createdAt := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := service.Multiplier(nil, time.May)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))

	got = service.Multiplier([]model.PricingRule{rule("summer", 4, 6, "1.10", true, createdAt)}, time.May)
	assert.True(t, got.Equal(decimal.RequireFromString("1.10")))
}

package money_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"basera/shared/money"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "january", date: date(2025, time.January, 15), want: 31},
		{name: "april", date: date(2025, time.April, 1), want: 30},
		{name: "february", date: date(2025, time.February, 28), want: 28},
		{name: "february leap year", date: date(2024, time.February, 1), want: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.DaysInMonth(tt.date))
		})
	}
}

func TestDailyRate(t *testing.T) {
	tests := []struct {
		name    string
		monthly string
		date    time.Time
		want    string
	}{
		{name: "divides evenly", monthly: "30000", date: date(2025, time.April, 10), want: "1000"},
		{name: "rounds half up", monthly: "10000", date: date(2025, time.January, 1), want: "322.58"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := decimal.RequireFromString(tt.monthly)

			assert.True(t, money.DailyRate(monthly, tt.date).Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestProrateMonth(t *testing.T) {
	tests := []struct {
		name    string
		monthly string
		first   time.Time
		last    time.Time
		want    string
	}{
		{
			name:    "full month charges exactly the monthly rent",
			monthly: "10000",
			first:   date(2025, time.January, 1),
			last:    date(2025, time.January, 31),
			want:    "10000",
		},
		{
			name:    "partial stay charges the daily rate per day",
			monthly: "1000",
			first:   date(2025, time.April, 1),
			last:    date(2025, time.April, 15),
			want:    "499.95",
		},
		{
			name:    "final day carries the rounding remainder",
			monthly: "1000",
			first:   date(2025, time.April, 16),
			last:    date(2025, time.April, 30),
			want:    "500.05",
		},
		{
			name:    "single day",
			monthly: "3000",
			first:   date(2025, time.June, 10),
			last:    date(2025, time.June, 10),
			want:    "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthly := decimal.RequireFromString(tt.monthly)
			got := money.ProrateMonth(monthly, tt.first, tt.last)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestProrateMonthHalvesSumToMonthly(t *testing.T) {
	monthly := decimal.RequireFromString("1000")

	firstHalf := money.ProrateMonth(monthly, date(2025, time.April, 1), date(2025, time.April, 15))
	secondHalf := money.ProrateMonth(monthly, date(2025, time.April, 16), date(2025, time.April, 30))

	assert.True(t, firstHalf.Add(secondHalf).Equal(monthly))
}

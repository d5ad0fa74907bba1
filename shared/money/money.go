package money

import (
	"time"

	"github.com/shopspring/decimal"
)

const currencyPlaces = 2

var Zero = decimal.Zero

// Round rounds an amount to currency precision, half up.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(currencyPlaces)
}

// DaysInMonth returns the number of days in the month containing date.
func DaysInMonth(date time.Time) int {
	firstOfNext := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)

	return firstOfNext.AddDate(0, 0, -1).Day()
}

// DailyRate converts a monthly rent into the per-day rate for the month
// containing date, rounded to currency precision.
func DailyRate(monthly decimal.Decimal, date time.Time) decimal.Decimal {
	return Round(monthly.Div(decimal.NewFromInt(int64(DaysInMonth(date)))))
}

// ProrateMonth charges a stay from first to last (inclusive, same calendar
// month) against a monthly rent. Each day costs the rounded daily rate; the
// rounding remainder is absorbed into the month's final day, so a full month
// always charges exactly the monthly rent.
func ProrateMonth(monthly decimal.Decimal, first, last time.Time) decimal.Decimal {
	daysInMonth := DaysInMonth(first)
	days := last.Day() - first.Day() + 1

	if days >= daysInMonth {
		return Round(monthly)
	}

	daily := DailyRate(monthly, first)

	if last.Day() == daysInMonth {
		// The stay covers the month's last day, which carries whatever the
		// rounded daily rate leaves over from the monthly rent.
		lastDay := monthly.Sub(daily.Mul(decimal.NewFromInt(int64(daysInMonth - 1))))

		return Round(daily.Mul(decimal.NewFromInt(int64(days - 1))).Add(lastDay))
	}

	return Round(daily.Mul(decimal.NewFromInt(int64(days))))
}

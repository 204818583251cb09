package money

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cents rounds an amount to 2 decimal places. decimal.Round is half-up for
// the positive amounts this system deals in.
func Cents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole calendar days from one date to another.
// Negative when `to` is before `from`.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

package form

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinorUnits converts a decimal currency amount into integer minor units.
// Rounding is half away from zero: 10.005 becomes 1001.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// DateStamp formats t as a YYYY-MM-DD calendar date.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

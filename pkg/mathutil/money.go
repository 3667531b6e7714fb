// Package mathutil provides small numeric helpers for presenting money.
package mathutil

import (
	"math"

	"github.com/iwvelando/take-home/pkg/constants"
)

// Round rounds a value to cents. It is meant for display and comparisons,
// never for the estimate itself.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsPositive checks if a value is positive (greater than one cent)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// EffectiveRate returns part as a percentage of whole, or 0 when whole is
// zero or not finite.
func EffectiveRate(part, whole float64) float64 {
	if whole == 0 || math.IsNaN(whole) || math.IsInf(whole, 0) {
		return 0
	}
	return part / whole * constants.PercentageMultiplier
}

// Percent converts a fractional rate such as 0.0545 into 5.45.
func Percent(rate float64) float64 {
	return rate * constants.PercentageMultiplier
}

// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/agrifin/agriplan/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// SafeDivide divides num by den, returning 0 when the denominator is 0 so
// that NaN and Inf never reach a displayed metric.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// Compound grows base by ratePercent per period over the given number of
// periods, e.g. Compound(100, 5, 2) = 100 * 1.05^2.
func Compound(base, ratePercent float64, periods int) float64 {
	if periods <= 0 {
		return base
	}
	return base * math.Pow(1+ratePercent/constants.PercentageMultiplier, float64(periods))
}

// Sanitize replaces NaN and Inf with 0. Final results pass through this as a
// last line of defense; guarded divisions should make it a no-op.
func Sanitize(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

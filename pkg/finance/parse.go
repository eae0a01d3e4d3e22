package finance

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a user-entered numeric string into a float64. The
// planning forms recalculate live as the user types, so unparseable input is
// treated as 0 rather than an error. NaN and Inf are rejected the same way.
func ParseAmount(input string) float64 {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatGrouped rounds to the nearest integer and groups digits by thousands,
// e.g. 1234567.8 -> "1,234,568". Used for currency amounts in insight text.
func FormatGrouped(f float64) string {
	n := int64(math.Round(f))

	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	if negative {
		return "-" + s
	}
	return s
}

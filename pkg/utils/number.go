package utils

import "math"

// RoundWithTwoDecimalPlace rounds half away from zero to cents precision.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}

// Percent returns part/whole*100 rounded to two decimals, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(part / whole * 100)
}

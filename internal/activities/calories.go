package activities

import "math"

// values this large have no fractional digit left to round
const maxRoundable = 1e15

// CaloriesBurned returns kcalPerHour * durationMinutes / 60 rounded to one decimal,
// halves away from zero. The result is +Inf only when the real value does not fit a float64.
func CaloriesBurned(kcalPerHour float64, durationMinutes int) float64 {
	v := kcalPerHour * float64(durationMinutes) / 60
	if math.IsInf(v, 0) {
		v = kcalPerHour / 60 * float64(durationMinutes)
	}
	return roundOneDecimal(v)
}

func roundOneDecimal(v float64) float64 {
	if math.Abs(v) >= maxRoundable || math.IsNaN(v) {
		return v
	}
	return math.Round(v*10) / 10
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

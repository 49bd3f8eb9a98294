package activities

type Stats struct {
	TotalSessions             int     `json:"total_sessions"`
	TotalDurationMinutes      int     `json:"total_duration_minutes"`
	TotalCaloriesBurned       float64 `json:"total_calories_burned"`
	AverageSessionDuration    float64 `json:"average_session_duration"`
	AverageCaloriesPerSession float64 `json:"average_calories_per_session"`
}

// StatsFromLogs aggregates the given sessions. Sums are kept unrounded and every
// output field is rounded once at the end. No sessions gives the zero Stats.
func StatsFromLogs(logs []ActivityLog) Stats {
	if len(logs) == 0 {
		return Stats{}
	}

	var (
		totalDuration int
		totalCalories float64
	)
	for _, l := range logs {
		totalDuration += l.DurationMinutes
		totalCalories += l.CaloriesBurned
	}

	count := float64(len(logs))
	return Stats{
		TotalSessions:             len(logs),
		TotalDurationMinutes:      totalDuration,
		TotalCaloriesBurned:       roundOneDecimal(totalCalories),
		AverageSessionDuration:    roundOneDecimal(float64(totalDuration) / count),
		AverageCaloriesPerSession: roundOneDecimal(totalCalories / count),
	}
}

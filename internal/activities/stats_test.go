package activities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func logsWith(durations []int, calories []float64) []ActivityLog {
	logs := make([]ActivityLog, 0, len(durations))
	for i := range durations {
		logs = append(logs, ActivityLog{
			DurationMinutes: durations[i],
			CaloriesBurned:  calories[i],
		})
	}
	return logs
}

func TestStatsFromLogs_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, StatsFromLogs(nil))
	assert.Equal(t, Stats{}, StatsFromLogs([]ActivityLog{}))
}

func TestStatsFromLogs(t *testing.T) {
	stats := StatsFromLogs(logsWith([]int{30, 60}, []float64{200, 400}))
	assert.Equal(t, Stats{
		TotalSessions:             2,
		TotalDurationMinutes:      90,
		TotalCaloriesBurned:       600,
		AverageSessionDuration:    45,
		AverageCaloriesPerSession: 300,
	}, stats)
}

func TestStatsFromLogs_AveragesRounded(t *testing.T) {
	stats := StatsFromLogs(logsWith([]int{10, 10, 11}, []float64{33.3, 33.3, 33.4}))
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 31, stats.TotalDurationMinutes)
	assert.Equal(t, 100.0, stats.TotalCaloriesBurned)
	assert.Equal(t, 10.3, stats.AverageSessionDuration)
	assert.Equal(t, 33.3, stats.AverageCaloriesPerSession)
}

func TestStatsFromLogs_AverageUsesUnroundedSum(t *testing.T) {
	// sum is 0.96: the total shows 1.0, but the average is 0.24 -> 0.2,
	// and not 1.0 / 4 = 0.25 -> 0.3
	stats := StatsFromLogs(logsWith([]int{1, 1, 1, 1}, []float64{0.24, 0.24, 0.24, 0.24}))
	assert.Equal(t, 1.0, stats.TotalCaloriesBurned)
	assert.Equal(t, 0.2, stats.AverageCaloriesPerSession)
}

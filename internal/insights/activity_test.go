package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marwick/garmin-insights-go/internal/garmin"
)

func sampleActivity() ActivityData {
	return ActivityData{
		TotalSteps:          5000,
		DailyStepGoal:       10000,
		TotalKilocalories:   2200,
		TotalDistanceMeters: 4000,
		SedentarySeconds:    36000,
		ActiveKilocalories:  450,
		ActiveSeconds:       5400,
	}
}

func TestExtractActivityData(t *testing.T) {
	doc := garmin.Document{
		"totalSteps":          5000.0,
		"dailyStepGoal":       10000.0,
		"totalKilocalories":   2200.0,
		"totalDistanceMeters": 4000.0,
		"sedentarySeconds":    36000.0,
		"activeKilocalories":  450.0,
		"activeSeconds":       5400.0,
		"unrelatedField":      "ignored",
	}

	data := ExtractActivityData(doc)
	assert.Equal(t, sampleActivity(), data)
}

func TestExtractActivityDataDefaults(t *testing.T) {
	data := ExtractActivityData(garmin.Document{})
	assert.Equal(t, ActivityData{}, data)
}

func TestStepGoalPercent(t *testing.T) {
	metric, err := StepGoalPercent(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 50.0, metric.Metric)
	assert.Equal(t, "%", metric.Unit)
	assert.Contains(t, metric.Description, "5000 / 10000 steps")
}

func TestStepGoalPercentNoGoal(t *testing.T) {
	data := sampleActivity()
	data.DailyStepGoal = 0

	_, err := StepGoalPercent(data)
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "daily_step_goal", noData.Field)
}

func TestCaloriesPerStep(t *testing.T) {
	metric, err := CaloriesPerStep(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 0.44, metric.Metric) // 2200 / 5000
	assert.Equal(t, "kcal/step", metric.Unit)
}

func TestCaloriesPerStepNoSteps(t *testing.T) {
	_, err := CaloriesPerStep(ActivityData{TotalKilocalories: 2200})
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
}

func TestCaloriesPerKm(t *testing.T) {
	metric, err := CaloriesPerKm(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 550.0, metric.Metric) // 2200 / 4km
}

func TestStrideLength(t *testing.T) {
	metric, err := StrideLength(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 0.8, metric.Metric) // 4000m / 5000 steps
	assert.Equal(t, "m/step", metric.Unit)
}

func TestStepsPerKm(t *testing.T) {
	metric, err := StepsPerKm(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 1250.0, metric.Metric) // 5000 / 4km
}

func TestSedentaryRatio(t *testing.T) {
	noon := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	metric, err := SedentaryRatio(sampleActivity(), noon)
	require.NoError(t, err)
	// 600 sedentary minutes over 720 elapsed
	assert.Equal(t, 0.83, metric.Metric)
	assert.Equal(t, "ratio", metric.Unit)
}

func TestSedentaryRatioAtMidnight(t *testing.T) {
	midnight := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Elapsed minutes clamp to 1 instead of dividing by zero
	metric, err := SedentaryRatio(sampleActivity(), midnight)
	require.NoError(t, err)
	assert.Equal(t, 600.0, metric.Metric)
}

func TestActiveMinutesPercent(t *testing.T) {
	noon := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	metric, err := ActiveMinutesPercent(sampleActivity(), noon)
	require.NoError(t, err)
	// 90 active minutes over 720 elapsed
	assert.Equal(t, 12.5, metric.Metric)
}

func TestCaloriesPerActiveMin(t *testing.T) {
	metric, err := CaloriesPerActiveMin(sampleActivity())
	require.NoError(t, err)
	assert.Equal(t, 5.0, metric.Metric) // 450 kcal / 90 min
}

func TestCaloriesPerActiveMinNoActivity(t *testing.T) {
	_, err := CaloriesPerActiveMin(ActivityData{ActiveKilocalories: 450})
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "active_seconds", noData.Field)
}

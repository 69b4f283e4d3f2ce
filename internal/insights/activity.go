package insights

import (
	"fmt"
	"time"
)

// StepGoalPercent calculates (totalSteps / dailyStepGoal) * 100.
func StepGoalPercent(data ActivityData) (Metric, error) {
	if data.DailyStepGoal == 0 {
		return Metric{}, &NoDataError{Field: "daily_step_goal", Endpoint: "step goal percent"}
	}

	pct := toPercentage(float64(data.TotalSteps), float64(data.DailyStepGoal))

	return buildMetric(
		pct,
		"%",
		fmt.Sprintf("Step goal progress: %.2f%% (%d / %d steps)", pct, data.TotalSteps, data.DailyStepGoal),
	), nil
}

// CaloriesPerStep calculates totalKilocalories / totalSteps.
func CaloriesPerStep(data ActivityData) (Metric, error) {
	if data.TotalSteps == 0 {
		return Metric{}, &NoDataError{Field: "total_steps", Endpoint: "calories per step"}
	}

	perStep := float64(data.TotalKilocalories) / float64(data.TotalSteps)

	return buildMetric(
		perStep,
		"kcal/step",
		fmt.Sprintf("Average calories per step: %.2f kcal/step", perStep),
	), nil
}

// CaloriesPerKm calculates totalKilocalories / (totalDistanceMeters / 1000).
func CaloriesPerKm(data ActivityData) (Metric, error) {
	if data.TotalDistanceMeters == 0 {
		return Metric{}, &NoDataError{Field: "total_distance_meters", Endpoint: "calories per km"}
	}

	distanceKm := metersToKilometers(float64(data.TotalDistanceMeters))
	perKm := float64(data.TotalKilocalories) / distanceKm

	return buildMetric(
		perKm,
		"kcal/km",
		fmt.Sprintf("Average calories per kilometer: %.2f kcal/km", perKm),
	), nil
}

// StrideLength calculates totalDistanceMeters / totalSteps.
func StrideLength(data ActivityData) (Metric, error) {
	if data.TotalSteps == 0 {
		return Metric{}, &NoDataError{Field: "total_steps", Endpoint: "stride length"}
	}

	stride := float64(data.TotalDistanceMeters) / float64(data.TotalSteps)

	return buildMetric(
		stride,
		"m/step",
		fmt.Sprintf("Average stride length: %.2f meters per step", stride),
	), nil
}

// SedentaryRatio calculates sedentary minutes over minutes elapsed today.
// now supplies the reference clock so the midnight edge is testable.
func SedentaryRatio(data ActivityData, now time.Time) (Metric, error) {
	minutesSinceMidnight := now.Hour()*60 + now.Minute()
	if minutesSinceMidnight == 0 {
		minutesSinceMidnight = 1 // Avoid division by zero
	}

	ratio := secondsToMinutes(float64(data.SedentarySeconds)) / float64(minutesSinceMidnight)

	return buildMetric(
		ratio,
		"ratio",
		fmt.Sprintf("Sedentary time ratio: %.2f (%d min sedentary / %d min elapsed)",
			ratio, data.SedentarySeconds/60, minutesSinceMidnight),
	), nil
}

// StepsPerKm calculates totalSteps / (totalDistanceMeters / 1000).
func StepsPerKm(data ActivityData) (Metric, error) {
	if data.TotalDistanceMeters == 0 {
		return Metric{}, &NoDataError{Field: "total_distance_meters", Endpoint: "steps per km"}
	}

	distanceKm := metersToKilometers(float64(data.TotalDistanceMeters))
	perKm := float64(data.TotalSteps) / distanceKm

	return buildMetric(
		perKm,
		"steps/km",
		fmt.Sprintf("Average steps per kilometer: %.2f steps/km", perKm),
	), nil
}

// ActiveMinutesPercent calculates active minutes over minutes elapsed today,
// as a percentage.
func ActiveMinutesPercent(data ActivityData, now time.Time) (Metric, error) {
	minutesSinceMidnight := now.Hour()*60 + now.Minute()
	if minutesSinceMidnight == 0 {
		minutesSinceMidnight = 1 // Avoid division by zero
	}

	activeMinutes := secondsToMinutes(float64(data.ActiveSeconds))
	pct := toPercentage(activeMinutes, float64(minutesSinceMidnight))

	return buildMetric(
		pct,
		"%",
		fmt.Sprintf("Active time percentage: %.2f%% (%d min active / %d min elapsed)",
			pct, data.ActiveSeconds/60, minutesSinceMidnight),
	), nil
}

// CaloriesPerActiveMin calculates activeKilocalories / active minutes.
func CaloriesPerActiveMin(data ActivityData) (Metric, error) {
	if data.ActiveSeconds == 0 {
		return Metric{}, &NoDataError{Field: "active_seconds", Endpoint: "calories per active minute"}
	}

	activeMinutes := secondsToMinutes(float64(data.ActiveSeconds))
	perMin := float64(data.ActiveKilocalories) / activeMinutes

	return buildMetric(
		perMin,
		"kcal/min",
		fmt.Sprintf("Average calories per active minute: %.2f kcal/min", perMin),
	), nil
}

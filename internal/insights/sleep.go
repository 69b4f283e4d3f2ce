package insights

import (
	"fmt"
	"math"
	"strings"
)

// Optimal stage ranges as percent of total sleep, based on sleep science.
var optimalStageRanges = map[string][2]float64{
	"deep":  {16, 33},
	"light": {30, 64},
	"rem":   {21, 31},
}

// StagePercentages converts sleep stage durations to percentages of total
// sleep time. SleepSeconds must be non-zero.
func StagePercentages(data SleepData) map[string]float64 {
	total := float64(data.SleepSeconds)
	return map[string]float64{
		"deep":  toPercentage(float64(data.DeepSeconds), total),
		"light": toPercentage(float64(data.LightSeconds), total),
		"rem":   toPercentage(float64(data.RemSeconds), total),
	}
}

// TimeInBed calculates time between sleep start and end timestamps.
func TimeInBed(data SleepData) (Metric, error) {
	if data.SleepStartGMT == 0 || data.SleepEndGMT == 0 {
		return Metric{}, &NoDataError{Field: "sleep_timestamps", Endpoint: "time in bed"}
	}

	// Timestamps arrive in milliseconds
	seconds := float64(data.SleepEndGMT-data.SleepStartGMT) / 1000
	hours := secondsToHours(seconds)

	return buildMetric(
		seconds,
		"seconds",
		fmt.Sprintf("Total time in bed: %.2f seconds (%.2f hours)", seconds, hours),
	), nil
}

// SleepEfficiency calculates sleep time as a percentage of time in bed.
func SleepEfficiency(data SleepData) (Metric, error) {
	if data.SleepSeconds == 0 || data.SleepStartGMT == 0 || data.SleepEndGMT == 0 {
		return Metric{}, &NoDataError{Field: "sleep_time", Endpoint: "sleep efficiency"}
	}

	timeInBed := float64(data.SleepEndGMT-data.SleepStartGMT) / 1000
	if timeInBed == 0 {
		return Metric{}, &NoDataError{Field: "time_in_bed", Endpoint: "sleep efficiency"}
	}

	pct := toPercentage(float64(data.SleepSeconds), timeInBed)

	return buildMetric(
		pct,
		"%",
		fmt.Sprintf("Sleep efficiency: %.2f%% of time in bed spent sleeping", pct),
	), nil
}

// AwakeningsPerHour calculates awakeCount / hours of sleep.
func AwakeningsPerHour(data SleepData) (Metric, error) {
	if data.SleepSeconds == 0 {
		return Metric{}, &NoDataError{Field: "sleep_time", Endpoint: "awakenings per hour"}
	}
	if data.Awakenings == nil {
		return Metric{}, &NoDataError{Field: "awake_count", Endpoint: "awakenings per hour"}
	}

	perHour := float64(*data.Awakenings) / secondsToHours(float64(data.SleepSeconds))

	return buildMetric(
		perHour,
		"awakenings/hour",
		fmt.Sprintf("Average %.2f awakenings per hour of sleep", perHour),
	), nil
}

// DeepSleepPercent calculates deepSleepSeconds / sleepTimeSeconds * 100.
func DeepSleepPercent(data SleepData) (Metric, error) {
	return stagePercent(data, "deep", "Deep sleep percent")
}

// RemSleepPercent calculates remSleepSeconds / sleepTimeSeconds * 100.
func RemSleepPercent(data SleepData) (Metric, error) {
	return stagePercent(data, "rem", "REM sleep percent")
}

// LightSleepPercent calculates lightSleepSeconds / sleepTimeSeconds * 100.
func LightSleepPercent(data SleepData) (Metric, error) {
	return stagePercent(data, "light", "Light sleep percent")
}

func stagePercent(data SleepData, stage, label string) (Metric, error) {
	if data.SleepSeconds == 0 {
		return Metric{}, &NoDataError{Field: "sleep_time", Endpoint: strings.ToLower(label)}
	}

	pct := StagePercentages(data)[stage]

	return buildMetric(
		pct,
		"%",
		fmt.Sprintf("%s: %.2f%%", label, pct),
	), nil
}

// SleepFragmentationIndex calculates awakenings per hour of staged sleep,
// falling back to the awake-duration ratio when the awakening count is
// absent. Lower is better.
func SleepFragmentationIndex(data SleepData) (Metric, error) {
	stagedHours := secondsToHours(float64(data.DeepSeconds + data.LightSeconds + data.RemSeconds))
	if stagedHours == 0 {
		return Metric{}, &NoDataError{Field: "sleep_time", Endpoint: "sleep fragmentation index"}
	}

	var fragmentation float64
	if data.Awakenings != nil {
		fragmentation = float64(*data.Awakenings) / stagedHours
	} else {
		fragmentation = secondsToHours(float64(data.AwakeSeconds)) / stagedHours
	}

	return buildMetric(
		fragmentation,
		"index",
		fmt.Sprintf("Sleep fragmentation index: %.2f (lower is better)", fragmentation),
	), nil
}

// StageCompositionAnalysis scores overall stage composition against optimal
// ranges and describes each stage's deviation.
func StageCompositionAnalysis(data SleepData) (Metric, error) {
	if data.SleepSeconds == 0 {
		return Metric{}, &NoDataError{Field: "sleep_time", Endpoint: "stage composition analysis"}
	}

	percentages := StagePercentages(data)
	analysis := strings.Join([]string{
		analyzeStage("Deep", percentages["deep"], data),
		analyzeStage("Light", percentages["light"], data),
		analyzeStage("REM", percentages["rem"], data),
	}, " | ")

	// Score: 100 minus weighted deviation from each range midpoint
	deepScore := math.Max(0, 100-math.Abs(percentages["deep"]-24.5)*2)
	lightScore := math.Max(0, 100-math.Abs(percentages["light"]-47)*1.5)
	remScore := math.Max(0, 100-math.Abs(percentages["rem"]-26)*2)
	overall := (deepScore + lightScore + remScore) / 3

	return buildMetric(
		overall,
		"score (0-100)",
		fmt.Sprintf("Overall sleep stage quality: %.2f/100 | %s", overall, analysis),
	), nil
}

// analyzeStage describes one stage's percentage against its optimal range.
func analyzeStage(stage string, percent float64, data SleepData) string {
	bounds := optimalStageRanges[strings.ToLower(stage)]
	minVal, maxVal := bounds[0], bounds[1]

	gapToMin := percent - minVal
	switch {
	case gapToMin < 0:
		deficitMinutes := (math.Abs(gapToMin) / 100) * secondsToMinutes(float64(data.SleepSeconds))
		return fmt.Sprintf("%s sleep: %.1f%% (optimal: %.0f-%.0f%%) - %.1fpp below minimum (%.1f min deficit)",
			stage, percent, minVal, maxVal, math.Abs(gapToMin), deficitMinutes)
	case percent > maxVal:
		return fmt.Sprintf("%s sleep: %.1f%% (optimal: %.0f-%.0f%%) - %.1fpp above maximum",
			stage, percent, minVal, maxVal, percent-maxVal)
	default:
		return fmt.Sprintf("%s sleep: %.1f%% (optimal: %.0f-%.0f%%) - within optimal range",
			stage, percent, minVal, maxVal)
	}
}

// SleepNeedGapMinutes calculates sleepNeed.actual - sleepNeed.baseline.
// Positive means deficit, negative means surplus.
func SleepNeedGapMinutes(data SleepData) (Metric, error) {
	if !data.SleepNeed.Present {
		return Metric{}, &NoDataError{Field: "sleep_need", Endpoint: "sleep need gap"}
	}

	gap := data.SleepNeed.Actual - data.SleepNeed.Baseline

	return buildMetric(
		gap,
		"minutes",
		fmt.Sprintf("Sleep need gap: %.2f minutes (positive = deficit, negative = surplus)", gap),
	), nil
}

// Package insights computes derived activity and sleep metrics from raw
// Garmin documents.
package insights

import (
	"fmt"
	"math"

	"github.com/marwick/garmin-insights-go/internal/garmin"
)

// Metric is the response model for every insight.
type Metric struct {
	Metric      float64 `json:"metric"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

// NoDataError indicates a required field was zero or absent in the fetched
// document. Translated to HTTP 404 by the server layer.
type NoDataError struct {
	Field    string
	Endpoint string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no %s data available for %s", e.Field, e.Endpoint)
}

// ActivityData is the extracted daily activity summary.
type ActivityData struct {
	TotalSteps          int
	DailyStepGoal       int
	TotalKilocalories   int
	TotalDistanceMeters int
	SedentarySeconds    int
	ActiveKilocalories  int
	ActiveSeconds       int
}

// SleepNeed is the optional sleep-need section of the sleep document,
// minutes of actual vs baseline need.
type SleepNeed struct {
	Actual   float64
	Baseline float64
	Present  bool
}

// SleepData is the extracted sleep stage data.
type SleepData struct {
	DeepSeconds   int
	LightSeconds  int
	RemSeconds    int
	SleepSeconds  int
	Awakenings    *int
	AwakeSeconds  int
	SleepStartGMT int64 // milliseconds since epoch; 0 when absent
	SleepEndGMT   int64
	SleepNeed     SleepNeed
}

// ExtractActivityData pulls the activity fields out of a daily summary
// document, defaulting absent fields to zero.
func ExtractActivityData(doc garmin.Document) ActivityData {
	return ActivityData{
		TotalSteps:          intField(doc, "totalSteps"),
		DailyStepGoal:       intField(doc, "dailyStepGoal"),
		TotalKilocalories:   intField(doc, "totalKilocalories"),
		TotalDistanceMeters: intField(doc, "totalDistanceMeters"),
		SedentarySeconds:    intField(doc, "sedentarySeconds"),
		ActiveKilocalories:  intField(doc, "activeKilocalories"),
		ActiveSeconds:       intField(doc, "activeSeconds"),
	}
}

// ExtractSleepData pulls the sleep stage fields out of the nested
// dailySleepDTO structure, defaulting absent fields to zero.
func ExtractSleepData(doc garmin.Document) SleepData {
	dto, _ := doc["dailySleepDTO"].(map[string]interface{})

	data := SleepData{
		DeepSeconds:   intField(dto, "deepSleepSeconds"),
		LightSeconds:  intField(dto, "lightSleepSeconds"),
		RemSeconds:    intField(dto, "remSleepSeconds"),
		SleepSeconds:  intField(dto, "sleepTimeSeconds"),
		AwakeSeconds:  intField(dto, "awakeSleepSeconds"),
		SleepStartGMT: int64Field(dto, "sleepStartTimestampGMT"),
		SleepEndGMT:   int64Field(dto, "sleepEndTimestampGMT"),
	}

	if dto != nil {
		if _, ok := dto["awakeCount"]; ok {
			n := intField(dto, "awakeCount")
			data.Awakenings = &n
		}
		if need, ok := dto["sleepNeed"].(map[string]interface{}); ok {
			data.SleepNeed = SleepNeed{
				Actual:   numField(need, "actual"),
				Baseline: numField(need, "baseline"),
				Present:  true,
			}
		}
	}

	return data
}

// buildMetric rounds value to two decimals, matching the original response
// contract.
func buildMetric(value float64, unit, description string) Metric {
	return Metric{
		Metric:      math.Round(value*100) / 100,
		Unit:        unit,
		Description: description,
	}
}

// Unit conversions shared by the formulas.

func secondsToHours(seconds float64) float64 {
	return seconds / 3600
}

func secondsToMinutes(seconds float64) float64 {
	return seconds / 60
}

func metersToKilometers(meters float64) float64 {
	return meters / 1000
}

func toPercentage(value, total float64) float64 {
	return (value / total) * 100
}

// numField reads a numeric field from a decoded JSON map.
// JSON decoding yields float64, but test fixtures seed literal ints too.
func numField(m map[string]interface{}, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func intField(m map[string]interface{}, key string) int {
	return int(numField(m, key))
}

func int64Field(m map[string]interface{}, key string) int64 {
	return int64(numField(m, key))
}

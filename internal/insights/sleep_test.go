package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marwick/garmin-insights-go/internal/garmin"
)

func sampleSleep() SleepData {
	awakenings := 4
	return SleepData{
		DeepSeconds:   7200,
		LightSeconds:  14400,
		RemSeconds:    7200,
		SleepSeconds:  28800,
		Awakenings:    &awakenings,
		AwakeSeconds:  1200,
		SleepStartGMT: 1717200000000,
		SleepEndGMT:   1717230000000,
		SleepNeed:     SleepNeed{Actual: 480, Baseline: 450, Present: true},
	}
}

func TestExtractSleepData(t *testing.T) {
	doc := garmin.Document{
		"dailySleepDTO": map[string]interface{}{
			"deepSleepSeconds":       7200.0,
			"lightSleepSeconds":      14400.0,
			"remSleepSeconds":        7200.0,
			"sleepTimeSeconds":       28800.0,
			"awakeCount":             4.0,
			"awakeSleepSeconds":      1200.0,
			"sleepStartTimestampGMT": 1717200000000.0,
			"sleepEndTimestampGMT":   1717230000000.0,
			"sleepNeed": map[string]interface{}{
				"actual":   480.0,
				"baseline": 450.0,
			},
		},
	}

	data := ExtractSleepData(doc)
	assert.Equal(t, sampleSleep(), data)
}

func TestExtractSleepDataMissingDTO(t *testing.T) {
	data := ExtractSleepData(garmin.Document{"remSleepData": true})
	assert.Zero(t, data.SleepSeconds)
	assert.Nil(t, data.Awakenings)
	assert.False(t, data.SleepNeed.Present)
}

func TestTimeInBed(t *testing.T) {
	metric, err := TimeInBed(sampleSleep())
	require.NoError(t, err)
	assert.Equal(t, 30000.0, metric.Metric)
	assert.Equal(t, "seconds", metric.Unit)
}

func TestTimeInBedMissingTimestamps(t *testing.T) {
	data := sampleSleep()
	data.SleepEndGMT = 0

	_, err := TimeInBed(data)
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
}

func TestSleepEfficiency(t *testing.T) {
	metric, err := SleepEfficiency(sampleSleep())
	require.NoError(t, err)
	assert.Equal(t, 96.0, metric.Metric) // 28800s asleep / 30000s in bed
	assert.Equal(t, "%", metric.Unit)
}

func TestAwakeningsPerHour(t *testing.T) {
	metric, err := AwakeningsPerHour(sampleSleep())
	require.NoError(t, err)
	assert.Equal(t, 0.5, metric.Metric) // 4 awakenings / 8 hours
}

func TestAwakeningsPerHourNoCount(t *testing.T) {
	data := sampleSleep()
	data.Awakenings = nil

	_, err := AwakeningsPerHour(data)
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "awake_count", noData.Field)
}

func TestStagePercents(t *testing.T) {
	data := sampleSleep()

	deep, err := DeepSleepPercent(data)
	require.NoError(t, err)
	assert.Equal(t, 25.0, deep.Metric)

	light, err := LightSleepPercent(data)
	require.NoError(t, err)
	assert.Equal(t, 50.0, light.Metric)

	rem, err := RemSleepPercent(data)
	require.NoError(t, err)
	assert.Equal(t, 25.0, rem.Metric)
}

func TestStagePercentNoSleep(t *testing.T) {
	_, err := DeepSleepPercent(SleepData{})
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
}

func TestSleepFragmentationIndex(t *testing.T) {
	metric, err := SleepFragmentationIndex(sampleSleep())
	require.NoError(t, err)
	assert.Equal(t, 0.5, metric.Metric) // 4 awakenings / 8 staged hours
	assert.Equal(t, "index", metric.Unit)
}

func TestSleepFragmentationIndexFallback(t *testing.T) {
	data := sampleSleep()
	data.Awakenings = nil
	data.AwakeSeconds = 3600

	// Falls back to awake-duration ratio: 1 awake hour / 8 staged hours
	metric, err := SleepFragmentationIndex(data)
	require.NoError(t, err)
	assert.Equal(t, 0.13, metric.Metric)
}

func TestStageCompositionAnalysis(t *testing.T) {
	metric, err := StageCompositionAnalysis(sampleSleep())
	require.NoError(t, err)

	// deep 25% → 99, light 50% → 95.5, rem 25% → 98
	assert.Equal(t, 97.5, metric.Metric)
	assert.Equal(t, "score (0-100)", metric.Unit)
	assert.Contains(t, metric.Description, "within optimal range")
}

func TestStageCompositionAnalysisDeficit(t *testing.T) {
	data := sampleSleep()
	data.DeepSeconds = 1440 // 5% of total, well below the 16% minimum
	data.LightSeconds = 20160

	metric, err := StageCompositionAnalysis(data)
	require.NoError(t, err)
	assert.Contains(t, metric.Description, "below minimum")
	assert.Contains(t, metric.Description, "min deficit")
}

func TestSleepNeedGapMinutes(t *testing.T) {
	metric, err := SleepNeedGapMinutes(sampleSleep())
	require.NoError(t, err)
	assert.Equal(t, 30.0, metric.Metric) // 480 actual - 450 baseline
	assert.Equal(t, "minutes", metric.Unit)
}

func TestSleepNeedGapMissing(t *testing.T) {
	data := sampleSleep()
	data.SleepNeed = SleepNeed{}

	_, err := SleepNeedGapMinutes(data)
	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
}

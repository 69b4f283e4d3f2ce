package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marwick/garmin-insights-go/internal/garmin"
	"github.com/marwick/garmin-insights-go/internal/insights"
)

func (h *Handlers) registerSleepRoutes(router *gin.Engine) {
	sleep := router.Group("/insights/sleep")

	sleep.GET("/time_in_bed", h.sleepMetric(insights.TimeInBed))
	sleep.GET("/sleep_efficiency", h.sleepMetric(insights.SleepEfficiency))
	sleep.GET("/awakenings_per_hour", h.sleepMetric(insights.AwakeningsPerHour))
	sleep.GET("/deep_sleep_percent", h.sleepMetric(insights.DeepSleepPercent))
	sleep.GET("/rem_sleep_percent", h.sleepMetric(insights.RemSleepPercent))
	sleep.GET("/light_sleep_percent", h.sleepMetric(insights.LightSleepPercent))
	sleep.GET("/sleep_fragmentation_index", h.sleepMetric(insights.SleepFragmentationIndex))
	sleep.GET("/stage_composition_analysis", h.sleepMetric(insights.StageCompositionAnalysis))
	sleep.GET("/sleep_need_gap_minutes", h.sleepMetric(insights.SleepNeedGapMinutes))

	sleep.GET("/health", h.sleepHealth)
}

// sleepMetric adapts a pure sleep formula into a handler.
func (h *Handlers) sleepMetric(compute func(insights.SleepData) (insights.Metric, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := h.sleepData(c)
		if !ok {
			return
		}
		metric, err := compute(data)
		respondMetric(c, metric, err)
	}
}

// sleepData fetches and extracts the sleep document, writing the error
// response itself when the data is unavailable.
func (h *Handlers) sleepData(c *gin.Context) (insights.SleepData, bool) {
	facade, ok := h.facade(c)
	if !ok {
		return insights.SleepData{}, false
	}

	doc, err := facade.GetSleep("")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": "Unable to fetch Garmin sleep data: " + err.Error(),
		})
		return insights.SleepData{}, false
	}
	if len(doc) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": "No sleep data available from Garmin API",
		})
		return insights.SleepData{}, false
	}

	return insights.ExtractSleepData(doc), true
}

// sleepHealth reports cache occupancy, the instance date, and the top-level
// keys of the fetched sleep document. Consumed by monitoring.
func (h *Handlers) sleepHealth(c *gin.Context) {
	facade, ok := h.facade(c)
	if !ok {
		return
	}

	doc, err := facade.GetSleep("")
	info := facade.Info()

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"detail": err.Error(),
			"cache":  info,
		})
		return
	}
	if len(doc) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"detail": "No sleep data available from Garmin API",
			"cache":  info,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cache":  info,
		"keys":   garmin.Keys(doc),
	})
}

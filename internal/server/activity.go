package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marwick/garmin-insights-go/internal/insights"
)

func (h *Handlers) registerActivityRoutes(router *gin.Engine) {
	activity := router.Group("/insights/activity")

	activity.GET("/step_goal_percent", h.activityMetric(insights.StepGoalPercent))
	activity.GET("/calories_per_step", h.activityMetric(insights.CaloriesPerStep))
	activity.GET("/calories_per_km", h.activityMetric(insights.CaloriesPerKm))
	activity.GET("/stride_length", h.activityMetric(insights.StrideLength))
	activity.GET("/steps_per_km", h.activityMetric(insights.StepsPerKm))
	activity.GET("/calories_per_active_min", h.activityMetric(insights.CaloriesPerActiveMin))

	// Clock-relative metrics compare against minutes elapsed today
	activity.GET("/sedentary_ratio", h.activityClockMetric(insights.SedentaryRatio))
	activity.GET("/active_minutes_percent", h.activityClockMetric(insights.ActiveMinutesPercent))
}

// activityMetric adapts a pure activity formula into a handler.
func (h *Handlers) activityMetric(compute func(insights.ActivityData) (insights.Metric, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := h.activityData(c)
		if !ok {
			return
		}
		metric, err := compute(data)
		respondMetric(c, metric, err)
	}
}

// activityClockMetric adapts a formula that also needs the current time.
func (h *Handlers) activityClockMetric(compute func(insights.ActivityData, time.Time) (insights.Metric, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := h.activityData(c)
		if !ok {
			return
		}
		metric, err := compute(data, h.now().In(h.loc))
		respondMetric(c, metric, err)
	}
}

// activityData fetches and extracts the daily summary, writing the error
// response itself when the data is unavailable.
func (h *Handlers) activityData(c *gin.Context) (insights.ActivityData, bool) {
	facade, ok := h.facade(c)
	if !ok {
		return insights.ActivityData{}, false
	}

	doc, err := facade.GetStats("")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": "Unable to fetch Garmin activity data: " + err.Error(),
		})
		return insights.ActivityData{}, false
	}
	if len(doc) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"detail": "No activity data available from Garmin API",
		})
		return insights.ActivityData{}, false
	}

	return insights.ExtractActivityData(doc), true
}

// respondMetric writes a computed metric, translating formula errors:
// a missing-field condition maps to 404, anything else to 503.
func respondMetric(c *gin.Context, metric insights.Metric, err error) {
	if err != nil {
		var noData *insights.NoDataError
		if errors.As(err, &noData) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metric)
}

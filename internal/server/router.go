package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marwick/garmin-insights-go/internal/cache"
	"github.com/marwick/garmin-insights-go/internal/config"
	"github.com/marwick/garmin-insights-go/internal/core"
	"github.com/marwick/garmin-insights-go/internal/session"
)

// Handlers holds the shared dependencies of all insight endpoints.
//
// Each request constructs its own data-access facade from the shared session
// manager, so cached documents never leak across requests while the login
// handshake still happens once per process.
type Handlers struct {
	cfg      *config.Config
	sessions *session.Manager
	loc      *time.Location
	now      func() time.Time
}

// NewRouter wires up the gin engine with all routes.
func NewRouter(cfg *config.Config, sessions *session.Manager) *gin.Engine {
	h := &Handlers{
		cfg:      cfg,
		sessions: sessions,
		loc:      core.GetTZ(cfg.Garmin.Timezone),
		now:      time.Now,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())

	router.GET("/", h.index)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.registerActivityRoutes(router)
	h.registerSleepRoutes(router)

	return router
}

// facade builds the per-request data-access facade. The optional date query
// parameter overrides the instance date; a malformed one aborts with 400.
func (h *Handlers) facade(c *gin.Context) (*cache.Manager, bool) {
	date := c.Query("date")
	if date != "" && !core.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "invalid date '" + date + "' (expected YYYY-MM-DD)",
		})
		return nil, false
	}
	return cache.NewManager(h.sessions, nil, date, h.loc, h.cfg.Garmin.Verbose), true
}

// index describes the API, mirroring the service's original root payload.
func (h *Handlers) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Garmin Insights API",
		"version": core.Version,
		"endpoints": gin.H{
			"activity": "/insights/activity/",
			"sleep":    "/insights/sleep/",
		},
		"activity_endpoints": gin.H{
			"step_goal_percent":       "/insights/activity/step_goal_percent",
			"calories_per_step":       "/insights/activity/calories_per_step",
			"calories_per_km":         "/insights/activity/calories_per_km",
			"stride_length":           "/insights/activity/stride_length",
			"sedentary_ratio":         "/insights/activity/sedentary_ratio",
			"steps_per_km":            "/insights/activity/steps_per_km",
			"active_minutes_percent":  "/insights/activity/active_minutes_percent",
			"calories_per_active_min": "/insights/activity/calories_per_active_min",
		},
		"sleep_endpoints": gin.H{
			"time_in_bed":                "/insights/sleep/time_in_bed",
			"sleep_efficiency":           "/insights/sleep/sleep_efficiency",
			"awakenings_per_hour":        "/insights/sleep/awakenings_per_hour",
			"deep_sleep_percent":         "/insights/sleep/deep_sleep_percent",
			"rem_sleep_percent":          "/insights/sleep/rem_sleep_percent",
			"light_sleep_percent":        "/insights/sleep/light_sleep_percent",
			"sleep_fragmentation_index":  "/insights/sleep/sleep_fragmentation_index",
			"stage_composition_analysis": "/insights/sleep/stage_composition_analysis",
			"sleep_need_gap_minutes":     "/insights/sleep/sleep_need_gap_minutes",
			"health":                     "/insights/sleep/health",
		},
	})
}

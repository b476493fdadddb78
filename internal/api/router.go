package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the HTTP surface: import trigger, event catalog, health
// and metrics.
func NewRouter(importH *ImportHandler, eventH *EventHandler, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.POST("/api/import/facebook", importH.ImportFacebookEvent)

	r.POST("/api/events", eventH.CreateEvent)
	r.GET("/api/events", eventH.ListEvents)
	r.GET("/api/events/:id", eventH.GetEvent)
	r.GET("/api/festivals", eventH.ListFestivals)

	return r
}

// Package httpapi is the operator review surface: a small HTTP API the
// admin UI consumes to inspect the intake queue and promote formats.
package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"dtr-engine/internal/format"
	"dtr-engine/internal/review"
)

func NewRouter(registry *format.Registry, reviewSvc *review.Service, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	h := &reviewHandler{registry: registry, review: reviewSvc, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	intakes := api.Group("/intakes")
	intakes.GET("", h.ListPending)
	intakes.GET("/:id", h.GetIntake)
	intakes.POST("/:id/approve", h.Approve)

	formats := api.Group("/formats")
	formats.GET("", h.ListFormats)
	formats.POST("", h.CreateFormat)
	formats.PATCH("/:id/active", h.SetFormatActive)

	return r
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, h *Handlers, metrics http.Handler) {
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Cache stats
		api.GET("/cache/stats", h.CacheStats)

		// Request audit log
		api.GET("/requests", h.ListRequestsAPI)

		// Civil files
		civil := api.Group("/files/civil")
		civil.GET("", h.CivilFilesByFileNumber)
		civil.GET("/search", h.SearchCivilFiles)
		civil.GET("/file-content", h.CivilFileContent)
		civil.GET("/court-summary-report/:appearanceId/:fileName", h.CivilCourtSummaryReport)
		civil.GET("/:fileId", h.CivilFileDetail)
		civil.GET("/:fileId/appearance-detail/:appearanceId", h.CivilAppearanceDetail)
	}
}

package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Точки от трекеров
	api.POST("/webhook/fix", h.ingestFix)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	protected.GET("/route", h.getRoute)

	// Маршруты для управления лодками
	boats := protected.Group("/boats")
	{
		boats.GET("", h.listBoats)
		boats.POST("", h.registerBoat)
		boats.GET("/:id", h.getBoat)
		boats.GET("/:id/history", h.getHistory)
		boats.GET("/:id/sightings", h.getSightings)
		boats.PUT("/:id/status", h.setStatus)
		boats.POST("/:id/emergency", h.declareEmergency)
		boats.DELETE("/:id/emergency", h.clearEmergency)
		boats.POST("/:id/reset", h.resetBoat)
	}
}

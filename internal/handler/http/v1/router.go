package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты управления прогонами, только с API-ключом
	simulations := api.Group("/simulations", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		simulations.POST("", h.createSimulation)
		simulations.GET("", h.listSimulations)
		simulations.GET("/:id", h.getSimulation)
		simulations.POST("/:id/step", h.stepSimulation)
		simulations.PUT("/:id/fog", h.setFog)
		simulations.POST("/:id/hazards", h.injectHazard)
		simulations.GET("/:id/view", h.getView)
		simulations.GET("/:id/events", h.listEvents)
		simulations.DELETE("/:id", h.stopSimulation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

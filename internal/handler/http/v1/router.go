package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты справочника зон: чтение открыто, запись под API-ключом
	zones := api.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/resolve", h.resolveZone) // Внутренний вызов онбординга
		zones.GET("/:id", h.getZone)

		admin := zones.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		{
			admin.POST("", h.createZone)
			admin.PUT("/:id", h.updateZone)
			admin.DELETE("/:id", h.deleteZone)
		}
	}

	// Журнал наблюдений (гражданский интейк)
	api.POST("/observations", h.recordObservation)

	// Производные сигналы для карты/дашборда
	api.GET("/zone-status", h.getZoneStatus)
	api.GET("/pulse", h.getPulse)
	api.GET("/heatmap", h.getHeatmap)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

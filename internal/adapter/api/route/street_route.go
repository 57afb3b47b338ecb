package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
)

// RegisterStreetRoutes registra as rotas do módulo de ruas
func RegisterStreetRoutes(r *gin.RouterGroup, streetController *controller.StreetController) {
	streets := r.Group("/streets")
	{
		streets.POST("", streetController.Create)
		streets.GET("", streetController.List)
		streets.GET("/stats", streetController.Stats)
		streets.GET("/:id", streetController.Get)
		streets.PUT("/:id", streetController.Update)
		streets.DELETE("/:id", streetController.Delete)
		streets.GET("/:id/addresses", streetController.Addresses)
	}
}

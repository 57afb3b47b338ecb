package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
)

// RegisterTakeUpRoutes registra as rotas de take-ups e pacotes
func RegisterTakeUpRoutes(r *gin.RouterGroup, takeUpController *controller.TakeUpController, packageController *controller.PackageController) {
	takeUps := r.Group("/take-ups")
	{
		takeUps.POST("", takeUpController.Create)
		takeUps.GET("", takeUpController.List)
		takeUps.GET("/stats", takeUpController.Stats)
		takeUps.GET("/:id", takeUpController.Get)
		takeUps.PUT("/:id", takeUpController.Update)
		takeUps.DELETE("/:id", takeUpController.Delete)
		takeUps.GET("/:id/packages", takeUpController.Packages)
	}

	packages := r.Group("/packages")
	{
		packages.POST("", packageController.Create)
		packages.GET("", packageController.List)
		packages.GET("/stats", packageController.Stats)
		packages.GET("/:id", packageController.Get)
		packages.PUT("/:id", packageController.Update)
		packages.DELETE("/:id", packageController.Delete)
	}
}

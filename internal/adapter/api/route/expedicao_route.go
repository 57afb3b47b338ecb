package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
)

// RegisterExpedicaoRoutes registra as rotas de expedição
func RegisterExpedicaoRoutes(r *gin.RouterGroup, expedicaoController *controller.ExpedicaoController) {
	expedicoes := r.Group("/expedicoes")
	{
		expedicoes.POST("", expedicaoController.Create)
		expedicoes.GET("", expedicaoController.List)
		expedicoes.GET("/stats", expedicaoController.Stats)
		expedicoes.GET("/available-packages", expedicaoController.AvailablePackages)
		expedicoes.GET("/:id", expedicaoController.Get)
		expedicoes.DELETE("/:id", expedicaoController.Delete)
		expedicoes.PATCH("/:id/status", expedicaoController.UpdateStatus)
		expedicoes.POST("/:id/advance", expedicaoController.Advance)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
)

// RegisterEnderecamentoRoutes registra as rotas de endereçamento
func RegisterEnderecamentoRoutes(r *gin.RouterGroup, enderecamentoController *controller.EnderecamentoController) {
	enderecamentos := r.Group("/enderecamentos")
	{
		enderecamentos.GET("", enderecamentoController.List)
		enderecamentos.POST("", enderecamentoController.Create)
		enderecamentos.GET("/stats", enderecamentoController.Stats)
		enderecamentos.GET("/available-packages", enderecamentoController.AvailablePackages)
		enderecamentos.GET("/available-addresses", enderecamentoController.AvailableAddresses)
		enderecamentos.GET("/address/:addressId", enderecamentoController.GetByAddress)
		enderecamentos.DELETE("/address/:addressId", enderecamentoController.Remove)
	}
}

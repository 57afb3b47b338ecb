package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
)

// RegisterAddressRoutes registra as rotas do módulo de endereços
func RegisterAddressRoutes(r *gin.RouterGroup, addressController *controller.AddressController) {
	addresses := r.Group("/addresses")
	{
		addresses.POST("", addressController.Create)
		addresses.GET("", addressController.List)
		addresses.GET("/stats", addressController.Stats)
		addresses.GET("/:id", addressController.Get)
		addresses.PUT("/:id", addressController.Update)
		addresses.DELETE("/:id", addressController.Delete)
	}
}

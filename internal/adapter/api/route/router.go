package route

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/controller"
	"github.com/hugohenrick/armazem/pkg/logger"
	"github.com/hugohenrick/armazem/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// BasePath é o prefixo de todas as rotas da API
const BasePath = "/api/v1"

// Controllers agrupa os controllers registrados no router
type Controllers struct {
	Health         *controller.HealthController
	Streets        *controller.StreetController
	Addresses      *controller.AddressController
	Customers      *controller.CustomerController
	TakeUps        *controller.TakeUpController
	Packages       *controller.PackageController
	Enderecamentos *controller.EnderecamentoController
	Expedicoes     *controller.ExpedicaoController
	Dashboard      *controller.DashboardController
}

// Options controla os middlewares globais do router
type Options struct {
	AllowedOrigins []string
	Swagger        bool
}

// NewRouter cria o engine do gin com os middlewares e as rotas da API
func NewRouter(c Controllers, opts Options, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(BasePath)
	api.GET("/health", c.Health.Check)

	RegisterStreetRoutes(api, c.Streets)
	RegisterAddressRoutes(api, c.Addresses)
	RegisterCustomerRoutes(api, c.Customers)
	RegisterTakeUpRoutes(api, c.TakeUps, c.Packages)
	RegisterEnderecamentoRoutes(api, c.Enderecamentos)
	RegisterExpedicaoRoutes(api, c.Expedicoes)
	api.GET("/dashboard/stats", c.Dashboard.Stats)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

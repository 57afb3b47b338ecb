package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// DashboardController expõe os totais da página inicial do painel
type DashboardController struct {
	dashboard *service.DashboardService
	logger    logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(dashboard *service.DashboardService, logger logger.Logger) *DashboardController {
	return &DashboardController{dashboard: dashboard, logger: logger}
}

// Stats retorna os totais do painel
// @Summary Totais do painel
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 503 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.dashboard.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular totais do painel", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// Version é a versão informada no health check
const Version = "1.0.0"

// Pinger é uma dependência que pode ser verificada no health check
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController verifica a API e suas dependências
type HealthController struct {
	checks map[string]Pinger
	logger logger.Logger
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(checks map[string]Pinger, logger logger.Logger) *HealthController {
	return &HealthController{checks: checks, logger: logger}
}

// Check verifica as dependências configuradas. Qualquer falha responde 503.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	resp := dto.HealthResponse{
		Status:       "ok",
		Version:      Version,
		Dependencies: make(map[string]string, len(c.checks)),
	}
	for name, check := range c.checks {
		if err := check.Ping(ctx); err != nil {
			c.logger.Warn("dependência indisponível", "dependency", name, "error", err)
			resp.Dependencies[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "up"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}

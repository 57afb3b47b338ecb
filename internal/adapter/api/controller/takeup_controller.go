package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// TakeUpController gerencia as requisições relacionadas a take-ups
type TakeUpController struct {
	takeUps *service.TakeUpService
	logger  logger.Logger
}

// NewTakeUpController cria uma nova instância de TakeUpController
func NewTakeUpController(takeUps *service.TakeUpService, logger logger.Logger) *TakeUpController {
	return &TakeUpController{takeUps: takeUps, logger: logger}
}

// List retorna a lista de take-ups
// @Summary Listar take-ups
// @Tags take-ups
// @Produce json
// @Param q query string false "Busca por cliente ou ID"
// @Param sort_by query string false "Campo de ordenação (customer, createdAt, packages)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[takeup.TakeUp]
// @Router /take-ups [get]
func (c *TakeUpController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.takeUps.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar take-ups", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Get retorna um take-up pelo ID
// @Summary Buscar take-up
// @Tags take-ups
// @Produce json
// @Param id path string true "ID do take-up"
// @Success 200 {object} takeup.TakeUp
// @Failure 404 {object} dto.ErrorResponse
// @Router /take-ups/{id} [get]
func (c *TakeUpController) Get(ctx *gin.Context) {
	t, err := c.takeUps.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "buscar take-up", err)
		return
	}
	ctx.JSON(http.StatusOK, t)
}

// Packages lista os pacotes de um take-up
// @Summary Pacotes do take-up
// @Tags take-ups
// @Produce json
// @Param id path string true "ID do take-up"
// @Success 200 {array} takeup.Package
// @Failure 404 {object} dto.ErrorResponse
// @Router /take-ups/{id}/packages [get]
func (c *TakeUpController) Packages(ctx *gin.Context) {
	packages, err := c.takeUps.Packages(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "listar pacotes do take-up", err)
		return
	}
	ctx.JSON(http.StatusOK, packages)
}

// Create cria um novo take-up
// @Summary Criar take-up
// @Tags take-ups
// @Accept json
// @Produce json
// @Param takeUp body takeup.Input true "Cliente do take-up"
// @Success 201 {object} takeup.TakeUp
// @Failure 422 {object} dto.ErrorResponse
// @Router /take-ups [post]
func (c *TakeUpController) Create(ctx *gin.Context) {
	var in takeup.Input
	if !bindJSON(ctx, &in) {
		return
	}

	t, err := c.takeUps.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar take-up", err)
		return
	}
	ctx.JSON(http.StatusCreated, t)
}

// Update troca o cliente de um take-up
// @Summary Atualizar take-up
// @Tags take-ups
// @Accept json
// @Produce json
// @Param id path string true "ID do take-up"
// @Param takeUp body takeup.Input true "Cliente do take-up"
// @Success 200 {object} takeup.TakeUp
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /take-ups/{id} [put]
func (c *TakeUpController) Update(ctx *gin.Context) {
	var in takeup.Input
	if !bindJSON(ctx, &in) {
		return
	}

	t, err := c.takeUps.Update(ctx, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar take-up", err)
		return
	}
	ctx.JSON(http.StatusOK, t)
}

// Delete exclui um take-up
// @Summary Excluir take-up
// @Tags take-ups
// @Param id path string true "ID do take-up"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /take-ups/{id} [delete]
func (c *TakeUpController) Delete(ctx *gin.Context) {
	if err := c.takeUps.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "excluir take-up", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Stats retorna as estatísticas de take-ups
// @Summary Estatísticas de take-ups
// @Tags take-ups
// @Produce json
// @Success 200 {object} takeup.Stats
// @Router /take-ups/stats [get]
func (c *TakeUpController) Stats(ctx *gin.Context) {
	stats, err := c.takeUps.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular estatísticas de take-ups", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

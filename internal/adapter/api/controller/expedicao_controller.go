package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/domain/expedicao"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// ExpedicaoController gerencia as requisições relacionadas a expedições
type ExpedicaoController struct {
	expedicoes *service.ExpedicaoService
	logger     logger.Logger
}

// NewExpedicaoController cria uma nova instância de ExpedicaoController
func NewExpedicaoController(expedicoes *service.ExpedicaoService, logger logger.Logger) *ExpedicaoController {
	return &ExpedicaoController{expedicoes: expedicoes, logger: logger}
}

// List retorna a lista de expedições
// @Summary Listar expedições
// @Tags expedicoes
// @Produce json
// @Param q query string false "Busca feita pelo backend"
// @Param sort_by query string false "Campo de ordenação (code, destination, status, createdAt, expectedDelivery)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[service.ExpedicaoView]
// @Router /expedicoes [get]
func (c *ExpedicaoController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.expedicoes.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar expedições", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Get retorna uma expedição pelo ID
// @Summary Buscar expedição
// @Tags expedicoes
// @Produce json
// @Param id path string true "ID da expedição"
// @Success 200 {object} service.ExpedicaoView
// @Failure 404 {object} dto.ErrorResponse
// @Router /expedicoes/{id} [get]
func (c *ExpedicaoController) Get(ctx *gin.Context) {
	e, err := c.expedicoes.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "buscar expedição", err)
		return
	}
	ctx.JSON(http.StatusOK, e)
}

// Create cria uma nova expedição com status Preparando
// @Summary Criar expedição
// @Tags expedicoes
// @Accept json
// @Produce json
// @Param expedicao body expedicao.Input true "Dados da expedição"
// @Success 201 {object} service.ExpedicaoView
// @Failure 422 {object} dto.ErrorResponse
// @Router /expedicoes [post]
func (c *ExpedicaoController) Create(ctx *gin.Context) {
	var in expedicao.Input
	if !bindJSON(ctx, &in) {
		return
	}

	e, err := c.expedicoes.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar expedição", err)
		return
	}
	ctx.JSON(http.StatusCreated, e)
}

// UpdateStatus muda o status da expedição para o próximo da sequência
// @Summary Atualizar status da expedição
// @Tags expedicoes
// @Accept json
// @Produce json
// @Param id path string true "ID da expedição"
// @Param status body service.StatusUpdateInput true "Novo status"
// @Success 200 {object} service.ExpedicaoView
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /expedicoes/{id}/status [patch]
func (c *ExpedicaoController) UpdateStatus(ctx *gin.Context) {
	var in service.StatusUpdateInput
	if !bindJSON(ctx, &in) {
		return
	}

	e, err := c.expedicoes.UpdateStatus(ctx, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar status da expedição", err)
		return
	}
	ctx.JSON(http.StatusOK, e)
}

// Advance avança a expedição para o próximo status
// @Summary Avançar expedição
// @Tags expedicoes
// @Produce json
// @Param id path string true "ID da expedição"
// @Success 200 {object} service.ExpedicaoView
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /expedicoes/{id}/advance [post]
func (c *ExpedicaoController) Advance(ctx *gin.Context) {
	e, err := c.expedicoes.Advance(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "avançar expedição", err)
		return
	}
	ctx.JSON(http.StatusOK, e)
}

// Delete exclui uma expedição
// @Summary Excluir expedição
// @Tags expedicoes
// @Param id path string true "ID da expedição"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /expedicoes/{id} [delete]
func (c *ExpedicaoController) Delete(ctx *gin.Context) {
	if err := c.expedicoes.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "excluir expedição", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Stats retorna as estatísticas de expedição
// @Summary Estatísticas de expedição
// @Tags expedicoes
// @Produce json
// @Success 200 {object} expedicao.Stats
// @Router /expedicoes/stats [get]
func (c *ExpedicaoController) Stats(ctx *gin.Context) {
	stats, err := c.expedicoes.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular estatísticas de expedição", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// AvailablePackages lista os pacotes que podem ser expedidos
// @Summary Pacotes disponíveis para expedição
// @Tags expedicoes
// @Produce json
// @Success 200 {array} takeup.Package
// @Router /expedicoes/available-packages [get]
func (c *ExpedicaoController) AvailablePackages(ctx *gin.Context) {
	packages, err := c.expedicoes.AvailablePackages(ctx)
	if err != nil {
		respondError(ctx, c.logger, "listar pacotes para expedição", err)
		return
	}
	ctx.JSON(http.StatusOK, packages)
}

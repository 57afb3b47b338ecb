package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// PackageController gerencia as requisições relacionadas a pacotes
type PackageController struct {
	packages *service.PackageService
	logger   logger.Logger
}

// NewPackageController cria uma nova instância de PackageController
func NewPackageController(packages *service.PackageService, logger logger.Logger) *PackageController {
	return &PackageController{packages: packages, logger: logger}
}

// List retorna a lista de pacotes
// @Summary Listar pacotes
// @Tags packages
// @Produce json
// @Param q query string false "Busca por número, lote ou ID"
// @Param sort_by query string false "Campo de ordenação (packageNumber, lot, weight, createdAt)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[takeup.Package]
// @Router /packages [get]
func (c *PackageController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.packages.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar pacotes", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Get retorna um pacote pelo ID
// @Summary Buscar pacote
// @Tags packages
// @Produce json
// @Param id path string true "ID do pacote"
// @Success 200 {object} takeup.Package
// @Failure 404 {object} dto.ErrorResponse
// @Router /packages/{id} [get]
func (c *PackageController) Get(ctx *gin.Context) {
	p, err := c.packages.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "buscar pacote", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Create cria um novo pacote
// @Summary Criar pacote
// @Tags packages
// @Accept json
// @Produce json
// @Param package body takeup.PackageInput true "Dados do pacote"
// @Success 201 {object} takeup.Package
// @Failure 422 {object} dto.ErrorResponse
// @Router /packages [post]
func (c *PackageController) Create(ctx *gin.Context) {
	var in takeup.PackageInput
	if !bindJSON(ctx, &in) {
		return
	}

	p, err := c.packages.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar pacote", err)
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

// Update atualiza um pacote
// @Summary Atualizar pacote
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "ID do pacote"
// @Param package body takeup.PackageUpdateInput true "Dados do pacote"
// @Success 200 {object} takeup.Package
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /packages/{id} [put]
func (c *PackageController) Update(ctx *gin.Context) {
	var in takeup.PackageUpdateInput
	if !bindJSON(ctx, &in) {
		return
	}

	p, err := c.packages.Update(ctx, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar pacote", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Delete exclui um pacote
// @Summary Excluir pacote
// @Tags packages
// @Param id path string true "ID do pacote"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /packages/{id} [delete]
func (c *PackageController) Delete(ctx *gin.Context) {
	if err := c.packages.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "excluir pacote", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Stats retorna as estatísticas de peso dos pacotes
// @Summary Estatísticas de pacotes
// @Tags packages
// @Produce json
// @Success 200 {object} takeup.PackageStats
// @Router /packages/stats [get]
func (c *PackageController) Stats(ctx *gin.Context) {
	stats, err := c.packages.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular estatísticas de pacotes", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

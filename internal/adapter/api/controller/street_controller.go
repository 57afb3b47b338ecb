package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// StreetController gerencia as requisições relacionadas a ruas
type StreetController struct {
	streets   *service.StreetService
	addresses *service.AddressService
	logger    logger.Logger
}

// NewStreetController cria uma nova instância de StreetController
func NewStreetController(streets *service.StreetService, addresses *service.AddressService, logger logger.Logger) *StreetController {
	return &StreetController{streets: streets, addresses: addresses, logger: logger}
}

// List retorna a lista de ruas
// @Summary Listar ruas
// @Tags streets
// @Produce json
// @Param q query string false "Busca pelo nome"
// @Param sort_by query string false "Campo de ordenação (name, createdAt)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[street.Street]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /streets [get]
func (c *StreetController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.streets.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar ruas", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Get retorna uma rua pelo ID
// @Summary Buscar rua
// @Tags streets
// @Produce json
// @Param id path int true "ID da rua"
// @Success 200 {object} street.Street
// @Failure 404 {object} dto.ErrorResponse
// @Router /streets/{id} [get]
func (c *StreetController) Get(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}

	s, err := c.streets.Get(ctx, id)
	if err != nil {
		respondError(ctx, c.logger, "buscar rua", err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

// Create cria uma nova rua
// @Summary Criar rua
// @Tags streets
// @Accept json
// @Produce json
// @Param street body street.Input true "Dados da rua"
// @Success 201 {object} street.Street
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /streets [post]
func (c *StreetController) Create(ctx *gin.Context) {
	var in street.Input
	if !bindJSON(ctx, &in) {
		return
	}

	s, err := c.streets.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar rua", err)
		return
	}
	ctx.JSON(http.StatusCreated, s)
}

// Update atualiza uma rua
// @Summary Atualizar rua
// @Tags streets
// @Accept json
// @Produce json
// @Param id path int true "ID da rua"
// @Param street body street.Input true "Dados da rua"
// @Success 200 {object} street.Street
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /streets/{id} [put]
func (c *StreetController) Update(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}

	var in street.Input
	if !bindJSON(ctx, &in) {
		return
	}

	s, err := c.streets.Update(ctx, id, in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar rua", err)
		return
	}
	ctx.JSON(http.StatusOK, s)
}

// Delete exclui uma rua
// @Summary Excluir rua
// @Tags streets
// @Param id path int true "ID da rua"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /streets/{id} [delete]
func (c *StreetController) Delete(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.streets.Delete(ctx, id); err != nil {
		respondError(ctx, c.logger, "excluir rua", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Stats retorna o total de ruas e as mais recentes
// @Summary Estatísticas de ruas
// @Tags streets
// @Produce json
// @Success 200 {object} street.Stats
// @Router /streets/stats [get]
func (c *StreetController) Stats(ctx *gin.Context) {
	stats, err := c.streets.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular estatísticas de ruas", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// Addresses lista os endereços de uma rua
// @Summary Endereços da rua
// @Tags streets
// @Produce json
// @Param id path int true "ID da rua"
// @Success 200 {object} service.Page[address.Address]
// @Failure 404 {object} dto.ErrorResponse
// @Router /streets/{id}/addresses [get]
func (c *StreetController) Addresses(ctx *gin.Context) {
	id, ok := intParam(ctx, "id")
	if !ok {
		return
	}
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.addresses.ListByStreet(ctx, id, params)
	if err != nil {
		respondError(ctx, c.logger, "listar endereços da rua", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

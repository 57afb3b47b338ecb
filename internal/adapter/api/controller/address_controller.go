package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// AddressController gerencia as requisições relacionadas a endereços
type AddressController struct {
	addresses *service.AddressService
	logger    logger.Logger
}

// NewAddressController cria uma nova instância de AddressController
func NewAddressController(addresses *service.AddressService, logger logger.Logger) *AddressController {
	return &AddressController{addresses: addresses, logger: logger}
}

// List retorna a lista de endereços
// @Summary Listar endereços
// @Tags addresses
// @Produce json
// @Param status query string false "empty ou filled"
// @Param street_id query int false "ID da rua"
// @Param q query string false "Busca por número, complemento ou rua"
// @Param sort_by query string false "Campo de ordenação (number, street, status, createdAt)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[address.Address]
// @Failure 400 {object} dto.ErrorResponse
// @Router /addresses [get]
func (c *AddressController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	var f service.AddressFilter
	switch status := address.Status(ctx.Query("status")); status {
	case "":
	case address.StatusEmpty, address.StatusFilled:
		f.Status = status
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", string(status)))
		return
	}
	if raw := ctx.Query("street_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "street_id inválido", err.Error()))
			return
		}
		f.StreetID = id
	}

	page, err := c.addresses.List(ctx, f, params)
	if err != nil {
		respondError(ctx, c.logger, "listar endereços", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Get retorna um endereço pelo ID
// @Summary Buscar endereço
// @Tags addresses
// @Produce json
// @Param id path string true "ID do endereço"
// @Success 200 {object} address.Address
// @Failure 404 {object} dto.ErrorResponse
// @Router /addresses/{id} [get]
func (c *AddressController) Get(ctx *gin.Context) {
	a, err := c.addresses.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "buscar endereço", err)
		return
	}
	ctx.JSON(http.StatusOK, a)
}

// Create cria um novo endereço
// @Summary Criar endereço
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body address.Input true "Dados do endereço"
// @Success 201 {object} address.Address
// @Failure 422 {object} dto.ErrorResponse
// @Router /addresses [post]
func (c *AddressController) Create(ctx *gin.Context) {
	var in address.Input
	if !bindJSON(ctx, &in) {
		return
	}

	a, err := c.addresses.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar endereço", err)
		return
	}
	ctx.JSON(http.StatusCreated, a)
}

// Update atualiza um endereço
// @Summary Atualizar endereço
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "ID do endereço"
// @Param address body address.Input true "Dados do endereço"
// @Success 200 {object} address.Address
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /addresses/{id} [put]
func (c *AddressController) Update(ctx *gin.Context) {
	var in address.Input
	if !bindJSON(ctx, &in) {
		return
	}

	a, err := c.addresses.Update(ctx, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar endereço", err)
		return
	}
	ctx.JSON(http.StatusOK, a)
}

// Delete exclui um endereço
// @Summary Excluir endereço
// @Tags addresses
// @Param id path string true "ID do endereço"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /addresses/{id} [delete]
func (c *AddressController) Delete(ctx *gin.Context) {
	if err := c.addresses.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "excluir endereço", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Stats retorna o resumo de ocupação dos endereços
// @Summary Resumo de ocupação
// @Tags addresses
// @Produce json
// @Success 200 {object} address.Summary
// @Router /addresses/stats [get]
func (c *AddressController) Stats(ctx *gin.Context) {
	summary, err := c.addresses.Summary(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular resumo de endereços", err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

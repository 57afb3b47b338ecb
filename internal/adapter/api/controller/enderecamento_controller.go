package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// EnderecamentoController gerencia o vínculo entre pacotes e endereços
type EnderecamentoController struct {
	enderecamentos *service.EnderecamentoService
	logger         logger.Logger
}

// NewEnderecamentoController cria uma nova instância de EnderecamentoController
func NewEnderecamentoController(enderecamentos *service.EnderecamentoService, logger logger.Logger) *EnderecamentoController {
	return &EnderecamentoController{enderecamentos: enderecamentos, logger: logger}
}

// List retorna os endereçamentos atuais
// @Summary Listar endereçamentos
// @Description Pareia cada endereço ocupado com o primeiro pacote ainda não endereçado
// @Tags enderecamentos
// @Produce json
// @Param q query string false "Busca por código, pacote, rua ou cliente"
// @Param sort_by query string false "Campo de ordenação (addressCode, packageNumber, street, customer)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[enderecamento.Enderecamento]
// @Failure 503 {object} dto.ErrorResponse
// @Router /enderecamentos [get]
func (c *EnderecamentoController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.enderecamentos.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar endereçamentos", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// GetByAddress retorna o endereçamento de um endereço
// @Summary Buscar endereçamento por endereço
// @Tags enderecamentos
// @Produce json
// @Param addressId path string true "ID do endereço"
// @Success 200 {object} enderecamento.Enderecamento
// @Failure 404 {object} dto.ErrorResponse
// @Router /enderecamentos/address/{addressId} [get]
func (c *EnderecamentoController) GetByAddress(ctx *gin.Context) {
	e, err := c.enderecamentos.GetByAddress(ctx, ctx.Param("addressId"))
	if err != nil {
		respondError(ctx, c.logger, "buscar endereçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, e)
}

// Stats retorna a ocupação do armazém
// @Summary Estatísticas de endereçamento
// @Tags enderecamentos
// @Produce json
// @Success 200 {object} enderecamento.Stats
// @Router /enderecamentos/stats [get]
func (c *EnderecamentoController) Stats(ctx *gin.Context) {
	stats, err := c.enderecamentos.Stats(ctx)
	if err != nil {
		respondError(ctx, c.logger, "calcular estatísticas de endereçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// AvailablePackages lista os pacotes sem endereço
// @Summary Pacotes disponíveis
// @Tags enderecamentos
// @Produce json
// @Success 200 {array} service.AvailablePackage
// @Router /enderecamentos/available-packages [get]
func (c *EnderecamentoController) AvailablePackages(ctx *gin.Context) {
	packages, err := c.enderecamentos.AvailablePackages(ctx)
	if err != nil {
		respondError(ctx, c.logger, "listar pacotes disponíveis", err)
		return
	}
	ctx.JSON(http.StatusOK, packages)
}

// AvailableAddresses lista os endereços livres
// @Summary Endereços disponíveis
// @Tags enderecamentos
// @Produce json
// @Success 200 {array} service.AvailableAddress
// @Router /enderecamentos/available-addresses [get]
func (c *EnderecamentoController) AvailableAddresses(ctx *gin.Context) {
	addresses, err := c.enderecamentos.AvailableAddresses(ctx)
	if err != nil {
		respondError(ctx, c.logger, "listar endereços disponíveis", err)
		return
	}
	ctx.JSON(http.StatusOK, addresses)
}

// Create endereça um pacote em um endereço livre
// @Summary Endereçar pacote
// @Tags enderecamentos
// @Accept json
// @Produce json
// @Param enderecamento body service.CreateEnderecamentoInput true "Pacote e endereço"
// @Success 201 {object} enderecamento.Enderecamento
// @Failure 422 {object} dto.ErrorResponse
// @Router /enderecamentos [post]
func (c *EnderecamentoController) Create(ctx *gin.Context) {
	var in service.CreateEnderecamentoInput
	if !bindJSON(ctx, &in) {
		return
	}

	e, err := c.enderecamentos.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar endereçamento", err)
		return
	}
	ctx.JSON(http.StatusCreated, e)
}

// Remove libera o endereço ocupado
// @Summary Remover endereçamento
// @Tags enderecamentos
// @Produce json
// @Param addressId path string true "ID do endereço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /enderecamentos/address/{addressId} [delete]
func (c *EnderecamentoController) Remove(ctx *gin.Context) {
	if err := c.enderecamentos.Remove(ctx, ctx.Param("addressId")); err != nil {
		respondError(ctx, c.logger, "remover endereçamento", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Endereçamento removido com sucesso", nil))
}

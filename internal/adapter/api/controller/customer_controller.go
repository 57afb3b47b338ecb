package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customers *service.CustomerService
	takeUps   *service.TakeUpService
	logger    logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customers *service.CustomerService, takeUps *service.TakeUpService, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customers: customers,
		takeUps:   takeUps,
		logger:    logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body customer.Input true "Dados do cliente"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var in customer.Input
	if !bindJSON(ctx, &in) {
		return
	}

	created, err := c.customers.Create(ctx, in)
	if err != nil {
		respondError(ctx, c.logger, "criar cliente", err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	found, err := c.customers.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "buscar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, found)
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes paginada
// @Tags customers
// @Produce json
// @Param q query string false "Busca por nome ou CNPJ"
// @Param sort_by query string false "Campo de ordenação (name, cnpj, createdAt)"
// @Param sort_order query string false "asc ou desc"
// @Param page query int false "Número da página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} service.Page[customer.Customer]
// @Failure 400 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.customers.List(ctx, params)
	if err != nil {
		respondError(ctx, c.logger, "listar clientes", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// Options retorna os clientes como opções de seleção
// @Summary Opções de clientes
// @Tags customers
// @Produce json
// @Success 200 {array} customer.Option
// @Router /customers/options [get]
func (c *CustomerController) Options(ctx *gin.Context) {
	options, err := c.customers.Options(ctx)
	if err != nil {
		respondError(ctx, c.logger, "listar opções de clientes", err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os campos informados de um cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param customer body customer.UpdateInput true "Dados do cliente"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	var in customer.UpdateInput
	if !bindJSON(ctx, &in) {
		return
	}

	updated, err := c.customers.Update(ctx, ctx.Param("id"), in)
	if err != nil {
		respondError(ctx, c.logger, "atualizar cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete exclui um cliente
// @Summary Excluir cliente
// @Description Exclui um cliente do sistema
// @Tags customers
// @Param id path string true "ID do cliente"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	if err := c.customers.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "excluir cliente", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// TakeUps lista os take-ups de um cliente
// @Summary Take-ups do cliente
// @Tags customers
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} service.Page[takeup.TakeUp]
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{id}/take-ups [get]
func (c *CustomerController) TakeUps(ctx *gin.Context) {
	params, ok := bindList(ctx)
	if !ok {
		return
	}

	page, err := c.takeUps.ListByCustomer(ctx, ctx.Param("id"), params)
	if err != nil {
		respondError(ctx, c.logger, "listar take-ups do cliente", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

package dto

import (
	"github.com/hugohenrick/armazem/internal/service"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListQuery contém os parâmetros de busca, ordenação e paginação aceitos nas listagens
type ListQuery struct {
	Q         string `form:"q"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Params converte a consulta nos parâmetros usados pelos serviços
func (q ListQuery) Params() service.ListParams {
	return service.ListParams{
		Query:     q.Q,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      q.Page,
		PageSize:  q.PageSize,
	}
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewValidationErrorResponse cria uma resposta de erro com as mensagens por campo
func NewValidationErrorResponse(code int, fields map[string][]string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: "Dados inválidos",
		Errors:  fields,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/internal/adapter/api/dto"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/internal/service"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const (
	msgNotFound    = "Recurso não encontrado"
	msgUnavailable = "Serviço temporariamente indisponível"
	msgInternal    = "Erro interno do servidor"
)

// respondError traduz o erro do serviço no status HTTP correspondente
func respondError(ctx *gin.Context, log logger.Logger, action string, err error) {
	if verr, ok := validation.As(err); ok {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(http.StatusUnprocessableEntity, verr.Fields))
		return
	}

	var apiErr *backend.APIError
	switch {
	case backend.IsNotFound(err), errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, msgNotFound, ""))
	case backend.IsUnavailable(err):
		log.Warn("backend indisponível", "action", action, "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, msgUnavailable, ""))
	case errors.As(err, &apiErr):
		ctx.JSON(apiErr.StatusCode, dto.NewErrorResponse(apiErr.StatusCode, apiErr.Message, ""))
	default:
		log.Error("erro ao "+action, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, msgInternal, ""))
	}
}

// bindJSON decodifica o corpo da requisição e responde 400 em caso de falha
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return false
	}
	return true
}

// bindList lê os parâmetros de listagem da query string
func bindList(ctx *gin.Context) (service.ListParams, bool) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetros inválidos", err.Error()))
		return service.ListParams{}, false
	}
	return q.Params(), true
}

// intParam lê um ID numérico da rota
func intParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", ""))
		return 0, false
	}
	return id, true
}

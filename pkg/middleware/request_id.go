package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o cabeçalho que carrega o ID da requisição
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey é a chave do ID da requisição no contexto do gin
	RequestIDKey = "request_id"
)

// RequestID adiciona um ID único a cada requisição, reaproveitando o
// cabeçalho X-Request-ID quando informado
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(RequestIDKey, requestID)

		c.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// RequestLogger registra cada requisição ao final do processamento
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
			"request_id", c.GetString(RequestIDKey),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("requisição concluída", fields...)
		case status >= 400:
			log.Warn("requisição concluída", fields...)
		default:
			log.Info("requisição concluída", fields...)
		}
	}
}

// Recovery converte panics em resposta 500 e registra o erro
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic ao processar requisição", "error", recovered, "path", c.Request.URL.Path, "request_id", c.GetString(RequestIDKey))
		c.AbortWithStatusJSON(500, gin.H{"code": 500, "message": "Erro interno do servidor"})
	})
}

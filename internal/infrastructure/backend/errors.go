package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indica que o backend respondeu 404
	ErrNotFound = errors.New("recurso não encontrado")
	// ErrUnavailable indica falha de rede, timeout ou erro 5xx do backend
	ErrUnavailable = errors.New("serviço temporariamente indisponível")
)

// APIError representa uma resposta de erro do backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend respondeu %d: %s", e.StatusCode, e.Message)
}

// Unwrap permite comparar o erro com ErrNotFound e ErrUnavailable
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// Retryable indica se a requisição pode ser repetida
func (e *APIError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsNotFound verifica se o erro representa um recurso inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable verifica se o erro representa indisponibilidade do backend
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

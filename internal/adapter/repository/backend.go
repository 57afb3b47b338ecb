package repository

import (
	"fmt"

	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

// notFound associa o erro de recurso inexistente do backend ao erro do repositório
func notFound(err, sentinel error) error {
	if backend.IsNotFound(err) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}

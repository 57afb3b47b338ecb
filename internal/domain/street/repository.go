package street

import (
	"context"
)

// Repository define a interface para operações de repositório de ruas
type Repository interface {
	// List lista todas as ruas
	List(ctx context.Context) ([]*Street, error)

	// FindByID busca uma rua pelo ID
	FindByID(ctx context.Context, id int64) (*Street, error)

	// Create cria uma nova rua
	Create(ctx context.Context, in Input) (*Street, error)

	// Update atualiza os dados de uma rua existente
	Update(ctx context.Context, id int64, in Input) (*Street, error)

	// Delete remove uma rua
	Delete(ctx context.Context, id int64) error
}

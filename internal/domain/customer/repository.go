package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// List lista todos os clientes
	List(ctx context.Context) ([]*Customer, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// Create cria um novo cliente
	Create(ctx context.Context, in Input) (*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, id string, in UpdateInput) (*Customer, error)

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error
}

package address

import (
	"context"
)

// Repository define a interface para operações de repositório de endereços
type Repository interface {
	// List lista todos os endereços na ordem retornada pelo backend
	List(ctx context.Context) ([]*Address, error)

	// FindByID busca um endereço pelo ID
	FindByID(ctx context.Context, id string) (*Address, error)

	// Create cria um novo endereço
	Create(ctx context.Context, in Input) (*Address, error)

	// Update atualiza os dados de um endereço existente
	Update(ctx context.Context, id string, in Input) (*Address, error)

	// Delete remove um endereço
	Delete(ctx context.Context, id string) error
}

package takeup

import (
	"context"
)

// Repository define a interface para operações de repositório de take-ups
type Repository interface {
	// List lista todos os take-ups
	List(ctx context.Context) ([]*TakeUp, error)

	// FindByID busca um take-up pelo ID
	FindByID(ctx context.Context, id string) (*TakeUp, error)

	// Create cria um novo take-up
	Create(ctx context.Context, in Input) (*TakeUp, error)

	// Update atualiza um take-up existente
	Update(ctx context.Context, id string, in Input) (*TakeUp, error)

	// Delete remove um take-up e seus pacotes
	Delete(ctx context.Context, id string) error
}

// PackageRepository define a interface para operações de repositório de pacotes
type PackageRepository interface {
	// List lista todos os pacotes na ordem retornada pelo backend
	List(ctx context.Context) ([]*Package, error)

	// ListByTakeUp lista os pacotes de um take-up
	ListByTakeUp(ctx context.Context, takeUpID string) ([]*Package, error)

	// FindByID busca um pacote pelo ID
	FindByID(ctx context.Context, id string) (*Package, error)

	// Create cria um novo pacote
	Create(ctx context.Context, in PackageInput) (*Package, error)

	// Update atualiza um pacote existente
	Update(ctx context.Context, id string, in PackageUpdateInput) (*Package, error)

	// Delete remove um pacote
	Delete(ctx context.Context, id string) error
}

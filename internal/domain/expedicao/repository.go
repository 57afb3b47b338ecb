package expedicao

import (
	"context"

	"github.com/hugohenrick/armazem/internal/domain/takeup"
)

// Repository define a interface para operações de repositório de expedições
type Repository interface {
	// List lista todas as expedições
	List(ctx context.Context) ([]*Expedicao, error)

	// Search busca expedições pelo termo informado
	Search(ctx context.Context, query string) ([]*Expedicao, error)

	// FindByID busca uma expedição pelo ID
	FindByID(ctx context.Context, id string) (*Expedicao, error)

	// Create cria uma nova expedição em preparação
	Create(ctx context.Context, in Input) (*Expedicao, error)

	// UpdateStatus registra a mudança de status de uma expedição
	UpdateStatus(ctx context.Context, id string, change StatusChange) (*Expedicao, error)

	// Delete remove uma expedição
	Delete(ctx context.Context, id string) error

	// AvailablePackages lista os pacotes disponíveis para expedição
	AvailablePackages(ctx context.Context) ([]*takeup.Package, error)
}

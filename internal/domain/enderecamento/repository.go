package enderecamento

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound         = errors.New("endereçamento não encontrado")
	ErrAddressAlreadyAssigned = errors.New("endereço já possui endereçamento registrado")
	ErrPackageAlreadyAssigned = errors.New("pacote já possui endereçamento registrado")
)

// Repository define a interface para o registro persistido de endereçamentos
type Repository interface {
	// List lista os registros em ordem de criação
	List(ctx context.Context) ([]*Record, error)

	// Create grava um registro. Retorna ErrAddressAlreadyAssigned ou
	// ErrPackageAlreadyAssigned quando o endereço ou o pacote já estão vinculados.
	Create(ctx context.Context, r *Record) error

	// Reserve remove os registros descartados e grava r na mesma transação.
	// Se a gravação falhar nada é removido. Os erros são os mesmos de Create.
	Reserve(ctx context.Context, r *Record, discard []uuid.UUID) error

	// DeleteByAddress remove o registro do endereço
	DeleteByAddress(ctx context.Context, addressID string) error

	// Delete remove um registro pelo ID
	Delete(ctx context.Context, id uuid.UUID) error
}

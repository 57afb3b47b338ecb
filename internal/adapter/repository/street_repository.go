package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

// ErrStreetNotFound indica que a rua não existe no backend
var ErrStreetNotFound = errors.New("rua não encontrada")

// StreetRepository implementa a interface street.Repository sobre o backend
type StreetRepository struct {
	client *backend.Client
}

// NewStreetRepository cria uma nova instância de StreetRepository
func NewStreetRepository(client *backend.Client) street.Repository {
	return &StreetRepository{client: client}
}

// List implementa street.Repository.List
func (r *StreetRepository) List(ctx context.Context) ([]*street.Street, error) {
	streets := make([]*street.Street, 0)
	if err := r.client.Get(ctx, "/streets", &streets); err != nil {
		return nil, fmt.Errorf("erro ao listar ruas: %w", err)
	}
	return streets, nil
}

// FindByID implementa street.Repository.FindByID
func (r *StreetRepository) FindByID(ctx context.Context, id int64) (*street.Street, error) {
	var s street.Street
	if err := r.client.Get(ctx, fmt.Sprintf("/streets/%d", id), &s); err != nil {
		return nil, notFound(err, ErrStreetNotFound)
	}
	return &s, nil
}

// Create implementa street.Repository.Create
func (r *StreetRepository) Create(ctx context.Context, in street.Input) (*street.Street, error) {
	var s street.Street
	if err := r.client.Post(ctx, "/streets", in, &s); err != nil {
		return nil, fmt.Errorf("erro ao criar rua: %w", err)
	}
	return &s, nil
}

// Update implementa street.Repository.Update
func (r *StreetRepository) Update(ctx context.Context, id int64, in street.Input) (*street.Street, error) {
	var s street.Street
	if err := r.client.Put(ctx, fmt.Sprintf("/streets/%d", id), in, &s); err != nil {
		return nil, notFound(err, ErrStreetNotFound)
	}
	return &s, nil
}

// Delete implementa street.Repository.Delete
func (r *StreetRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/streets/%d", id)); err != nil {
		return notFound(err, ErrStreetNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

// ErrAddressNotFound indica que o endereço não existe no backend
var ErrAddressNotFound = errors.New("endereço não encontrado")

// AddressRepository implementa a interface address.Repository sobre o backend
type AddressRepository struct {
	client *backend.Client
}

// NewAddressRepository cria uma nova instância de AddressRepository
func NewAddressRepository(client *backend.Client) address.Repository {
	return &AddressRepository{client: client}
}

// List implementa address.Repository.List
func (r *AddressRepository) List(ctx context.Context) ([]*address.Address, error) {
	addresses := make([]*address.Address, 0)
	if err := r.client.Get(ctx, "/addresses", &addresses); err != nil {
		return nil, fmt.Errorf("erro ao listar endereços: %w", err)
	}
	return addresses, nil
}

// FindByID implementa address.Repository.FindByID
func (r *AddressRepository) FindByID(ctx context.Context, id string) (*address.Address, error) {
	var a address.Address
	if err := r.client.Get(ctx, "/addresses/"+id, &a); err != nil {
		return nil, notFound(err, ErrAddressNotFound)
	}
	return &a, nil
}

// Create implementa address.Repository.Create
func (r *AddressRepository) Create(ctx context.Context, in address.Input) (*address.Address, error) {
	var a address.Address
	if err := r.client.Post(ctx, "/addresses", in, &a); err != nil {
		return nil, fmt.Errorf("erro ao criar endereço: %w", err)
	}
	return &a, nil
}

// Update implementa address.Repository.Update
func (r *AddressRepository) Update(ctx context.Context, id string, in address.Input) (*address.Address, error) {
	var a address.Address
	if err := r.client.Put(ctx, "/addresses/"+id, in, &a); err != nil {
		return nil, notFound(err, ErrAddressNotFound)
	}
	return &a, nil
}

// Delete implementa address.Repository.Delete
func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/addresses/"+id); err != nil {
		return notFound(err, ErrAddressNotFound)
	}
	return nil
}

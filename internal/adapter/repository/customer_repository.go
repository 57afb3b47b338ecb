package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

// ErrCustomerNotFound indica que o cliente não existe no backend
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// CustomerRepository implementa a interface customer.Repository sobre o backend
type CustomerRepository struct {
	client *backend.Client
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(client *backend.Client) customer.Repository {
	return &CustomerRepository{client: client}
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	if err := r.client.Get(ctx, "/customers", &customers); err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	return customers, nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.client.Get(ctx, "/customers/"+id, &c); err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return &c, nil
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, in customer.Input) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.client.Post(ctx, "/customers", in, &c); err != nil {
		return nil, fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return &c, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, id string, in customer.UpdateInput) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.client.Put(ctx, "/customers/"+id, in, &c); err != nil {
		return nil, notFound(err, ErrCustomerNotFound)
	}
	return &c, nil
}

// Delete implementa customer.Repository.Delete
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/customers/"+id); err != nil {
		return notFound(err, ErrCustomerNotFound)
	}
	return nil
}

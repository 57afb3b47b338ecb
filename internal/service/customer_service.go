package service

import (
	"context"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/pkg/logger"
)

var customerSortKeys = sortKeys[*customer.Customer]{
	"name":      func(a, b *customer.Customer) int { return compareStrings(a.Name, b.Name) },
	"cnpj":      func(a, b *customer.Customer) int { return compareStrings(a.CNPJ, b.CNPJ) },
	"createdAt": func(a, b *customer.Customer) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// CustomerService reúne as ações sobre clientes
type CustomerService struct {
	repo        customer.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
}

// NewCustomerService cria uma nova instância de CustomerService
func NewCustomerService(repo customer.Repository, invalidator notifier.Invalidator, logger logger.Logger) *CustomerService {
	return &CustomerService{repo: repo, invalidator: invalidator, logger: logger}
}

// List lista os clientes com busca, ordenação e paginação
func (s *CustomerService) List(ctx context.Context, params ListParams) (Page[*customer.Customer], error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return Page[*customer.Customer]{}, err
	}
	return list(customers, params, (*customer.Customer).Matches, customerSortKeys), nil
}

// Options lista os clientes no formato de opções de seleção
func (s *CustomerService) Options(ctx context.Context) ([]customer.Option, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]customer.Option, 0, len(customers))
	for _, c := range customers {
		options = append(options, c.ToOption())
	}
	return options, nil
}

// Get busca um cliente pelo ID
func (s *CustomerService) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Create cria um cliente
func (s *CustomerService) Create(ctx context.Context, in customer.Input) (*customer.Customer, error) {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cliente criado", "id", created.ID)
	s.invalidator.Invalidate(ctx, pathCustomers, pathDashboard)
	return created, nil
}

// Update atualiza os campos informados de um cliente
func (s *CustomerService) Update(ctx context.Context, id string, in customer.UpdateInput) (*customer.Customer, error) {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, pathCustomers, detail(pathCustomers, id), pathDashboard)
	return updated, nil
}

// Delete remove um cliente
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("cliente excluído", "id", id)
	s.invalidator.Invalidate(ctx, pathCustomers, pathDashboard)
	return nil
}

package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const msgStreetNotFound = "Rua selecionada não existe"

var addressSortKeys = sortKeys[*address.Address]{
	"number":    func(a, b *address.Address) int { return compareStrings(a.Number, b.Number) },
	"street":    func(a, b *address.Address) int { return compareStrings(a.Street.Name, b.Street.Name) },
	"status":    func(a, b *address.Address) int { return compareStrings(string(a.Status), string(b.Status)) },
	"createdAt": func(a, b *address.Address) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// AddressFilter restringe a listagem de endereços
type AddressFilter struct {
	Status   address.Status
	StreetID int64
}

// AddressService reúne as ações sobre endereços
type AddressService struct {
	repo        address.Repository
	streets     street.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
}

// NewAddressService cria uma nova instância de AddressService
func NewAddressService(repo address.Repository, streets street.Repository, invalidator notifier.Invalidator, logger logger.Logger) *AddressService {
	return &AddressService{repo: repo, streets: streets, invalidator: invalidator, logger: logger}
}

// List lista os endereços com filtros, busca, ordenação e paginação
func (s *AddressService) List(ctx context.Context, f AddressFilter, params ListParams) (Page[*address.Address], error) {
	addresses, err := s.repo.List(ctx)
	if err != nil {
		return Page[*address.Address]{}, err
	}
	if f.Status != "" {
		addresses = address.FilterByStatus(addresses, f.Status)
	}
	if f.StreetID > 0 {
		addresses = address.FilterByStreet(addresses, f.StreetID)
	}
	return list(addresses, params, (*address.Address).Matches, addressSortKeys), nil
}

// ListByStreet lista os endereços de uma rua existente
func (s *AddressService) ListByStreet(ctx context.Context, streetID int64, params ListParams) (Page[*address.Address], error) {
	if _, err := s.streets.FindByID(ctx, streetID); err != nil {
		return Page[*address.Address]{}, err
	}
	return s.List(ctx, AddressFilter{StreetID: streetID}, params)
}

// Get busca um endereço pelo ID
func (s *AddressService) Get(ctx context.Context, id string) (*address.Address, error) {
	return s.repo.FindByID(ctx, id)
}

// Create cria um endereço em uma rua existente
func (s *AddressService) Create(ctx context.Context, in address.Input) (*address.Address, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("endereço criado", "id", created.ID, "street_id", in.StreetID)
	s.invalidator.Invalidate(ctx, pathAddresses, pathDashboard)
	return created, nil
}

// Update atualiza um endereço
func (s *AddressService) Update(ctx context.Context, id string, in address.Input) (*address.Address, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, pathAddresses, detail(pathAddresses, id), pathEnderecamentos, pathDashboard)
	return updated, nil
}

// Delete remove um endereço
func (s *AddressService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("endereço excluído", "id", id)
	s.invalidator.Invalidate(ctx, pathAddresses, pathEnderecamentos, pathDashboard)
	return nil
}

// Summary retorna o resumo de ocupação dos endereços
func (s *AddressService) Summary(ctx context.Context) (address.Summary, error) {
	addresses, err := s.repo.List(ctx)
	if err != nil {
		return address.Summary{}, err
	}
	return address.Summarize(addresses), nil
}

func (s *AddressService) validate(ctx context.Context, in *address.Input) error {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return err
	}

	if _, err := s.streets.FindByID(ctx, in.StreetID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return validation.FieldError("streetId", msgStreetNotFound)
		}
		return err
	}
	return nil
}

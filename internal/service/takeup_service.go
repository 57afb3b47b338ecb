package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const msgCustomerNotFound = "Cliente não encontrado"

var takeUpSortKeys = sortKeys[*takeup.TakeUp]{
	"customer":  func(a, b *takeup.TakeUp) int { return compareStrings(a.CustomerName(), b.CustomerName()) },
	"packages":  func(a, b *takeup.TakeUp) int { return compareInts(int64(len(a.Packages)), int64(len(b.Packages))) },
	"createdAt": func(a, b *takeup.TakeUp) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// TakeUpService reúne as ações sobre take-ups
type TakeUpService struct {
	repo        takeup.Repository
	packages    takeup.PackageRepository
	customers   customer.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
	now         Clock
}

// NewTakeUpService cria uma nova instância de TakeUpService
func NewTakeUpService(repo takeup.Repository, packages takeup.PackageRepository, customers customer.Repository, invalidator notifier.Invalidator, logger logger.Logger, now Clock) *TakeUpService {
	return &TakeUpService{
		repo:        repo,
		packages:    packages,
		customers:   customers,
		invalidator: invalidator,
		logger:      logger,
		now:         now,
	}
}

// List lista os take-ups com busca, ordenação e paginação
func (s *TakeUpService) List(ctx context.Context, params ListParams) (Page[*takeup.TakeUp], error) {
	takeUps, err := s.repo.List(ctx)
	if err != nil {
		return Page[*takeup.TakeUp]{}, err
	}
	return list(takeUps, params, (*takeup.TakeUp).Matches, takeUpSortKeys), nil
}

// ListByCustomer lista os take-ups de um cliente existente
func (s *TakeUpService) ListByCustomer(ctx context.Context, customerID string, params ListParams) (Page[*takeup.TakeUp], error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return Page[*takeup.TakeUp]{}, err
	}

	takeUps, err := s.repo.List(ctx)
	if err != nil {
		return Page[*takeup.TakeUp]{}, err
	}
	return list(takeup.FilterByCustomer(takeUps, customerID), params, (*takeup.TakeUp).Matches, takeUpSortKeys), nil
}

// Get busca um take-up pelo ID
func (s *TakeUpService) Get(ctx context.Context, id string) (*takeup.TakeUp, error) {
	return s.repo.FindByID(ctx, id)
}

// Packages lista os pacotes de um take-up
func (s *TakeUpService) Packages(ctx context.Context, id string) ([]*takeup.Package, error) {
	return s.packages.ListByTakeUp(ctx, id)
}

// Create cria um take-up para um cliente existente
func (s *TakeUpService) Create(ctx context.Context, in takeup.Input) (*takeup.TakeUp, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("take-up criado", "id", created.ID, "customer_id", in.CustomerID)
	s.invalidator.Invalidate(ctx, pathTakeUps, pathDashboard)
	return created, nil
}

// Update troca o cliente de um take-up
func (s *TakeUpService) Update(ctx context.Context, id string, in takeup.Input) (*takeup.TakeUp, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, pathTakeUps, detail(pathTakeUps, id), pathDashboard)
	return updated, nil
}

// Delete remove um take-up
func (s *TakeUpService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("take-up excluído", "id", id)
	s.invalidator.Invalidate(ctx, pathTakeUps, pathPackages, pathEnderecamentos, pathDashboard)
	return nil
}

// Stats retorna as estatísticas de take-ups
func (s *TakeUpService) Stats(ctx context.Context) (takeup.Stats, error) {
	takeUps, err := s.repo.List(ctx)
	if err != nil {
		return takeup.Stats{}, err
	}
	return takeup.ComputeStats(takeUps, s.now()), nil
}

func (s *TakeUpService) validate(ctx context.Context, in *takeup.Input) error {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return err
	}

	if _, err := s.customers.FindByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return validation.FieldError("customerId", msgCustomerNotFound)
		}
		return err
	}
	return nil
}

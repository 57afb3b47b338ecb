package service

import (
	"context"
	"strconv"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/street"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/pkg/logger"
)

var streetSortKeys = sortKeys[*street.Street]{
	"name":      func(a, b *street.Street) int { return compareStrings(a.Name, b.Name) },
	"id":        func(a, b *street.Street) int { return compareInts(a.ID, b.ID) },
	"createdAt": func(a, b *street.Street) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// StreetService reúne as ações sobre ruas
type StreetService struct {
	repo        street.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
}

// NewStreetService cria uma nova instância de StreetService
func NewStreetService(repo street.Repository, invalidator notifier.Invalidator, logger logger.Logger) *StreetService {
	return &StreetService{repo: repo, invalidator: invalidator, logger: logger}
}

// List lista as ruas com busca, ordenação e paginação
func (s *StreetService) List(ctx context.Context, params ListParams) (Page[*street.Street], error) {
	streets, err := s.repo.List(ctx)
	if err != nil {
		return Page[*street.Street]{}, err
	}
	return list(streets, params, (*street.Street).Matches, streetSortKeys), nil
}

// Get busca uma rua pelo ID
func (s *StreetService) Get(ctx context.Context, id int64) (*street.Street, error) {
	return s.repo.FindByID(ctx, id)
}

// Create cria uma rua
func (s *StreetService) Create(ctx context.Context, in street.Input) (*street.Street, error) {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("rua criada", "id", created.ID)
	s.invalidator.Invalidate(ctx, pathStreets, pathDashboard)
	return created, nil
}

// Update atualiza uma rua
func (s *StreetService) Update(ctx context.Context, id int64, in street.Input) (*street.Street, error) {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, pathStreets, detail(pathStreets, strconv.FormatInt(id, 10)), pathDashboard)
	return updated, nil
}

// Delete remove uma rua
func (s *StreetService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("rua excluída", "id", id)
	s.invalidator.Invalidate(ctx, pathStreets, pathDashboard)
	return nil
}

// Stats retorna o total de ruas e as mais recentes
func (s *StreetService) Stats(ctx context.Context) (street.Stats, error) {
	streets, err := s.repo.List(ctx)
	if err != nil {
		return street.Stats{}, err
	}
	return street.ComputeStats(streets), nil
}

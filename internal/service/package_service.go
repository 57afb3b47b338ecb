package service

import (
	"context"
	"errors"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const (
	msgTakeUpNotFound          = "Take-up não encontrado"
	msgDuplicatedPackageNumber = "Número do pacote já existe neste take-up"
)

var packageSortKeys = sortKeys[*takeup.Package]{
	"packageNumber": func(a, b *takeup.Package) int { return compareStrings(a.PackageNumber, b.PackageNumber) },
	"lot":           func(a, b *takeup.Package) int { return compareStrings(a.Lot, b.Lot) },
	"weight":        func(a, b *takeup.Package) int { return a.Weight.Cmp(b.Weight) },
	"createdAt":     func(a, b *takeup.Package) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// PackageService reúne as ações sobre pacotes
type PackageService struct {
	repo        takeup.PackageRepository
	takeUps     takeup.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
}

// NewPackageService cria uma nova instância de PackageService
func NewPackageService(repo takeup.PackageRepository, takeUps takeup.Repository, invalidator notifier.Invalidator, logger logger.Logger) *PackageService {
	return &PackageService{repo: repo, takeUps: takeUps, invalidator: invalidator, logger: logger}
}

// List lista os pacotes com busca, ordenação e paginação
func (s *PackageService) List(ctx context.Context, params ListParams) (Page[*takeup.Package], error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return Page[*takeup.Package]{}, err
	}
	return list(packages, params, (*takeup.Package).Matches, packageSortKeys), nil
}

// Get busca um pacote pelo ID
func (s *PackageService) Get(ctx context.Context, id string) (*takeup.Package, error) {
	return s.repo.FindByID(ctx, id)
}

// Create cria um pacote em um take-up existente. O número do pacote deve ser
// único dentro do take-up.
func (s *PackageService) Create(ctx context.Context, in takeup.PackageInput) (*takeup.Package, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.takeUps.FindByID(ctx, in.TakeUpID); err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, validation.FieldError("takeUpId", msgTakeUpNotFound)
		}
		return nil, err
	}

	if err := s.checkUnique(ctx, in.TakeUpID, in.PackageNumber, ""); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pacote criado", "id", created.ID, "take_up_id", in.TakeUpID)
	s.invalidator.Invalidate(ctx, pathTakeUps, detail(pathTakeUps, in.TakeUpID), pathPackages, pathDashboard)
	return created, nil
}

// Update atualiza um pacote existente
func (s *PackageService) Update(ctx context.Context, id string, in takeup.PackageUpdateInput) (*takeup.Package, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, current.TakeUpID, in.PackageNumber, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, pathTakeUps, detail(pathTakeUps, current.TakeUpID), pathPackages, pathDashboard)
	return updated, nil
}

// Delete remove um pacote existente
func (s *PackageService) Delete(ctx context.Context, id string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("pacote excluído", "id", id)
	s.invalidator.Invalidate(ctx, pathTakeUps, detail(pathTakeUps, current.TakeUpID), pathPackages, pathEnderecamentos, pathDashboard)
	return nil
}

// Stats retorna as estatísticas de peso dos pacotes
func (s *PackageService) Stats(ctx context.Context) (takeup.PackageStats, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return takeup.PackageStats{}, err
	}
	return takeup.ComputePackageStats(packages), nil
}

func (s *PackageService) checkUnique(ctx context.Context, takeUpID, packageNumber, excludeID string) error {
	packages, err := s.repo.ListByTakeUp(ctx, takeUpID)
	if err != nil {
		return err
	}
	for _, p := range packages {
		if p.TakeUpID == "" {
			p.TakeUpID = takeUpID
		}
	}
	if takeup.HasPackageNumber(packages, takeUpID, packageNumber, excludeID) {
		return validation.FieldError("packageNumber", msgDuplicatedPackageNumber)
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

var (
	ErrTakeUpNotFound  = errors.New("take-up não encontrado")
	ErrPackageNotFound = errors.New("pacote não encontrado")
)

// TakeUpRepository implementa a interface takeup.Repository sobre o backend
type TakeUpRepository struct {
	client *backend.Client
}

// NewTakeUpRepository cria uma nova instância de TakeUpRepository
func NewTakeUpRepository(client *backend.Client) takeup.Repository {
	return &TakeUpRepository{client: client}
}

// List implementa takeup.Repository.List
func (r *TakeUpRepository) List(ctx context.Context) ([]*takeup.TakeUp, error) {
	takeUps := make([]*takeup.TakeUp, 0)
	if err := r.client.Get(ctx, "/take-ups", &takeUps); err != nil {
		return nil, fmt.Errorf("erro ao listar take-ups: %w", err)
	}
	return takeUps, nil
}

// FindByID implementa takeup.Repository.FindByID
func (r *TakeUpRepository) FindByID(ctx context.Context, id string) (*takeup.TakeUp, error) {
	var t takeup.TakeUp
	if err := r.client.Get(ctx, "/take-ups/"+id, &t); err != nil {
		return nil, notFound(err, ErrTakeUpNotFound)
	}
	return &t, nil
}

// Create implementa takeup.Repository.Create
func (r *TakeUpRepository) Create(ctx context.Context, in takeup.Input) (*takeup.TakeUp, error) {
	var t takeup.TakeUp
	if err := r.client.Post(ctx, "/take-ups", in, &t); err != nil {
		return nil, fmt.Errorf("erro ao criar take-up: %w", err)
	}
	return &t, nil
}

// Update implementa takeup.Repository.Update
func (r *TakeUpRepository) Update(ctx context.Context, id string, in takeup.Input) (*takeup.TakeUp, error) {
	var t takeup.TakeUp
	if err := r.client.Put(ctx, "/take-ups/"+id, in, &t); err != nil {
		return nil, notFound(err, ErrTakeUpNotFound)
	}
	return &t, nil
}

// Delete implementa takeup.Repository.Delete
func (r *TakeUpRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/take-ups/"+id); err != nil {
		return notFound(err, ErrTakeUpNotFound)
	}
	return nil
}

// PackageRepository implementa a interface takeup.PackageRepository sobre o backend
type PackageRepository struct {
	client *backend.Client
}

// NewPackageRepository cria uma nova instância de PackageRepository
func NewPackageRepository(client *backend.Client) takeup.PackageRepository {
	return &PackageRepository{client: client}
}

// List implementa takeup.PackageRepository.List
func (r *PackageRepository) List(ctx context.Context) ([]*takeup.Package, error) {
	packages := make([]*takeup.Package, 0)
	if err := r.client.Get(ctx, "/take-ups/packages", &packages); err != nil {
		return nil, fmt.Errorf("erro ao listar pacotes: %w", err)
	}
	return packages, nil
}

// ListByTakeUp implementa takeup.PackageRepository.ListByTakeUp
func (r *PackageRepository) ListByTakeUp(ctx context.Context, takeUpID string) ([]*takeup.Package, error) {
	packages := make([]*takeup.Package, 0)
	if err := r.client.Get(ctx, "/take-ups/"+takeUpID+"/packages", &packages); err != nil {
		return nil, notFound(err, ErrTakeUpNotFound)
	}
	return packages, nil
}

// FindByID implementa takeup.PackageRepository.FindByID
func (r *PackageRepository) FindByID(ctx context.Context, id string) (*takeup.Package, error) {
	var p takeup.Package
	if err := r.client.Get(ctx, "/take-ups/packages/"+id, &p); err != nil {
		return nil, notFound(err, ErrPackageNotFound)
	}
	return &p, nil
}

// Create implementa takeup.PackageRepository.Create
func (r *PackageRepository) Create(ctx context.Context, in takeup.PackageInput) (*takeup.Package, error) {
	var p takeup.Package
	if err := r.client.Post(ctx, "/take-ups/packages", in, &p); err != nil {
		return nil, notFound(err, ErrTakeUpNotFound)
	}
	return &p, nil
}

// Update implementa takeup.PackageRepository.Update
func (r *PackageRepository) Update(ctx context.Context, id string, in takeup.PackageUpdateInput) (*takeup.Package, error) {
	var p takeup.Package
	if err := r.client.Put(ctx, "/take-ups/packages/"+id, in, &p); err != nil {
		return nil, notFound(err, ErrPackageNotFound)
	}
	return &p, nil
}

// Delete implementa takeup.PackageRepository.Delete
func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/take-ups/packages/"+id); err != nil {
		return notFound(err, ErrPackageNotFound)
	}
	return nil
}

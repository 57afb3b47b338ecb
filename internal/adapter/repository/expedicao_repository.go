package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/expedicao"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/infrastructure/backend"
)

// ErrExpedicaoNotFound indica que a expedição não existe no backend
var ErrExpedicaoNotFound = errors.New("expedição não encontrada")

// O backend de expedições recebe os campos em snake_case.
type createExpedicaoRequest struct {
	Code             string           `json:"code"`
	Destination      string           `json:"destination"`
	Responsible      string           `json:"responsible"`
	Carrier          string           `json:"carrier"`
	Tracking         string           `json:"tracking"`
	PackageIDs       []string         `json:"package_ids"`
	ExpectedDelivery *time.Time       `json:"expected_delivery,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	Status           expedicao.Status `json:"status"`
}

type updateStatusRequest struct {
	Status         expedicao.Status `json:"status"`
	Notes          string           `json:"notes,omitempty"`
	ActualDelivery *time.Time       `json:"actual_delivery,omitempty"`
}

// ExpedicaoRepository implementa a interface expedicao.Repository sobre o backend
type ExpedicaoRepository struct {
	client *backend.Client
}

// NewExpedicaoRepository cria uma nova instância de ExpedicaoRepository
func NewExpedicaoRepository(client *backend.Client) expedicao.Repository {
	return &ExpedicaoRepository{client: client}
}

// List implementa expedicao.Repository.List
func (r *ExpedicaoRepository) List(ctx context.Context) ([]*expedicao.Expedicao, error) {
	list := make([]*expedicao.Expedicao, 0)
	if err := r.client.Get(ctx, "/expedicoes", &list); err != nil {
		return nil, fmt.Errorf("erro ao listar expedições: %w", err)
	}
	return list, nil
}

// Search implementa expedicao.Repository.Search
func (r *ExpedicaoRepository) Search(ctx context.Context, query string) ([]*expedicao.Expedicao, error) {
	list := make([]*expedicao.Expedicao, 0)
	if err := r.client.Get(ctx, "/expedicoes/search?q="+url.QueryEscape(query), &list); err != nil {
		return nil, fmt.Errorf("erro ao buscar expedições: %w", err)
	}
	return list, nil
}

// FindByID implementa expedicao.Repository.FindByID
func (r *ExpedicaoRepository) FindByID(ctx context.Context, id string) (*expedicao.Expedicao, error) {
	var e expedicao.Expedicao
	if err := r.client.Get(ctx, "/expedicoes/"+id, &e); err != nil {
		return nil, notFound(err, ErrExpedicaoNotFound)
	}
	return &e, nil
}

// Create implementa expedicao.Repository.Create
func (r *ExpedicaoRepository) Create(ctx context.Context, in expedicao.Input) (*expedicao.Expedicao, error) {
	req := createExpedicaoRequest{
		Code:             in.Code,
		Destination:      in.Destination,
		Responsible:      in.Responsible,
		Carrier:          in.Carrier,
		Tracking:         in.Tracking,
		PackageIDs:       in.PackageIDs,
		ExpectedDelivery: in.ExpectedDelivery,
		Notes:            in.Notes,
		Status:           expedicao.StatusPreparando,
	}

	var e expedicao.Expedicao
	if err := r.client.Post(ctx, "/expedicoes", req, &e); err != nil {
		return nil, fmt.Errorf("erro ao criar expedição: %w", err)
	}
	return &e, nil
}

// UpdateStatus implementa expedicao.Repository.UpdateStatus
func (r *ExpedicaoRepository) UpdateStatus(ctx context.Context, id string, change expedicao.StatusChange) (*expedicao.Expedicao, error) {
	req := updateStatusRequest{
		Status:         change.Status,
		Notes:          change.Notes,
		ActualDelivery: change.ActualDelivery,
	}

	var e expedicao.Expedicao
	if err := r.client.Put(ctx, "/expedicoes/"+id, req, &e); err != nil {
		return nil, notFound(err, ErrExpedicaoNotFound)
	}
	return &e, nil
}

// Delete implementa expedicao.Repository.Delete
func (r *ExpedicaoRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/expedicoes/"+id); err != nil {
		return notFound(err, ErrExpedicaoNotFound)
	}
	return nil
}

// AvailablePackages implementa expedicao.Repository.AvailablePackages
func (r *ExpedicaoRepository) AvailablePackages(ctx context.Context) ([]*takeup.Package, error) {
	packages := make([]*takeup.Package, 0)
	if err := r.client.Get(ctx, "/packages/available-for-shipping", &packages); err != nil {
		return nil, fmt.Errorf("erro ao listar pacotes disponíveis para expedição: %w", err)
	}
	return packages, nil
}

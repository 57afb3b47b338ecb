package service

import (
	"context"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/customer"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/shopspring/decimal"
)

// DashboardStats resume os totais exibidos na página inicial do painel
type DashboardStats struct {
	TotalCustomers  int             `json:"totalCustomers"`
	TotalTakeUps    int             `json:"totalTakeUps"`
	TotalPackages   int             `json:"totalPackages"`
	TotalAddresses  int             `json:"totalAddresses"`
	EmptyAddresses  int             `json:"emptyAddresses"`
	FilledAddresses int             `json:"filledAddresses"`
	TotalWeight     decimal.Decimal `json:"totalWeight"`
	AverageWeight   decimal.Decimal `json:"averageWeight"`
}

// DashboardService calcula os totais do painel
type DashboardService struct {
	customers customer.Repository
	takeUps   takeup.Repository
	packages  takeup.PackageRepository
	addresses address.Repository
}

// NewDashboardService cria uma nova instância de DashboardService
func NewDashboardService(customers customer.Repository, takeUps takeup.Repository, packages takeup.PackageRepository, addresses address.Repository) *DashboardService {
	return &DashboardService{customers: customers, takeUps: takeUps, packages: packages, addresses: addresses}
}

// Stats busca as listas no backend e calcula os totais
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	takeUps, err := s.takeUps.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	packages, err := s.packages.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	addresses, err := s.addresses.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalCustomers:  len(customers),
		TotalTakeUps:    len(takeUps),
		TotalPackages:   len(packages),
		TotalAddresses:  len(addresses),
		EmptyAddresses:  len(address.FilterByStatus(addresses, address.StatusEmpty)),
		FilledAddresses: len(address.FilterByStatus(addresses, address.StatusFilled)),
		TotalWeight:     takeup.TotalWeight(packages),
		AverageWeight:   takeup.AverageWeight(packages),
	}, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/enderecamento"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const (
	msgPackageUnavailable = "Pacote não encontrado ou já endereçado"
	msgAddressUnavailable = "Endereço não encontrado ou já ocupado"
	msgAddressNotFilled   = "Endereço não está ocupado"
)

var enderecamentoSortKeys = sortKeys[*enderecamento.Enderecamento]{
	"addressCode": func(a, b *enderecamento.Enderecamento) int { return compareStrings(a.AddressCode, b.AddressCode) },
	"packageNumber": func(a, b *enderecamento.Enderecamento) int {
		return compareStrings(a.Package.PackageNumber, b.Package.PackageNumber)
	},
	"street":   func(a, b *enderecamento.Enderecamento) int { return compareStrings(a.StreetName, b.StreetName) },
	"customer": func(a, b *enderecamento.Enderecamento) int { return compareStrings(a.CustomerName, b.CustomerName) },
}

// CreateEnderecamentoInput contém os dados para endereçar um pacote
type CreateEnderecamentoInput struct {
	PackageID string `json:"packageId" validate:"required,uuid"`
	AddressID string `json:"addressId" validate:"required,uuid"`
}

// AvailablePackage é um pacote ainda sem endereço
type AvailablePackage struct {
	*takeup.Package
	TakeUpCode   string `json:"takeUpCode"`
	CustomerName string `json:"customerName"`
}

// AvailableAddress é um endereço livre
type AvailableAddress struct {
	*address.Address
	AddressCode string `json:"addressCode"`
	FullAddress string `json:"fullAddress"`
}

// EnderecamentoService reúne as ações de endereçamento de pacotes. Quando
// ledger não é nil os vínculos também são gravados no banco.
type EnderecamentoService struct {
	packages    takeup.PackageRepository
	addresses   address.Repository
	takeUps     takeup.Repository
	ledger      enderecamento.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
	now         Clock
}

// NewEnderecamentoService cria uma nova instância de EnderecamentoService
func NewEnderecamentoService(
	packages takeup.PackageRepository,
	addresses address.Repository,
	takeUps takeup.Repository,
	ledger enderecamento.Repository,
	invalidator notifier.Invalidator,
	logger logger.Logger,
	now Clock,
) *EnderecamentoService {
	return &EnderecamentoService{
		packages:    packages,
		addresses:   addresses,
		takeUps:     takeUps,
		ledger:      ledger,
		invalidator: invalidator,
		logger:      logger,
		now:         now,
	}
}

// snapshot é o estado atual do armazém montado a partir do backend
type snapshot struct {
	packages    []*takeup.Package
	addresses   []*address.Address
	records     []*enderecamento.Record
	assignments []*enderecamento.Enderecamento
}

func (s *EnderecamentoService) load(ctx context.Context) (*snapshot, error) {
	packages, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addresses.List(ctx)
	if err != nil {
		return nil, err
	}

	var records []*enderecamento.Record
	if s.ledger != nil {
		records, err = s.ledger.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &snapshot{
		packages:    packages,
		addresses:   addresses,
		records:     records,
		assignments: enderecamento.ComputeAssignmentsWithLedger(packages, addresses, records),
	}, nil
}

// customerNames mapeia o take-up para o nome do cliente. Falhas deixam os
// endereçamentos com o cliente não identificado.
func (s *EnderecamentoService) customerNames(ctx context.Context) map[string]string {
	takeUps, err := s.takeUps.List(ctx)
	if err != nil {
		s.logger.Warn("não foi possível carregar os clientes dos take-ups", "error", err)
		return nil
	}

	names := make(map[string]string, len(takeUps))
	for _, t := range takeUps {
		names[t.ID] = t.CustomerName()
	}
	return names
}

// List lista os endereçamentos atuais com busca, ordenação e paginação
func (s *EnderecamentoService) List(ctx context.Context, params ListParams) (Page[*enderecamento.Enderecamento], error) {
	snap, err := s.load(ctx)
	if err != nil {
		return Page[*enderecamento.Enderecamento]{}, err
	}
	enderecamento.SetCustomerNames(snap.assignments, s.customerNames(ctx))
	return list(snap.assignments, params, (*enderecamento.Enderecamento).Matches, enderecamentoSortKeys), nil
}

// GetByAddress retorna o endereçamento de um endereço
func (s *EnderecamentoService) GetByAddress(ctx context.Context, addressID string) (*enderecamento.Enderecamento, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	e := enderecamento.FindByAddress(snap.assignments, addressID)
	if e == nil {
		return nil, ErrNotFound
	}
	enderecamento.SetCustomerNames([]*enderecamento.Enderecamento{e}, s.customerNames(ctx))
	return e, nil
}

// Stats retorna as estatísticas de ocupação do armazém
func (s *EnderecamentoService) Stats(ctx context.Context) (enderecamento.Stats, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return enderecamento.Stats{}, err
	}

	stats := enderecamento.ComputeStats(snap.packages, snap.addresses, snap.assignments)
	enderecamento.SetCustomerNames(stats.RecentEnderecamentos, s.customerNames(ctx))
	return stats, nil
}

// AvailablePackages lista os pacotes que ainda não ocupam um endereço
func (s *EnderecamentoService) AvailablePackages(ctx context.Context) ([]AvailablePackage, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	names := s.customerNames(ctx)
	available := enderecamento.AvailablePackages(snap.packages, snap.assignments)
	out := make([]AvailablePackage, 0, len(available))
	for _, p := range available {
		name := names[p.TakeUpID]
		if name == "" {
			name = enderecamento.UnknownCustomer
		}
		out = append(out, AvailablePackage{Package: p, TakeUpCode: p.TakeUpCode(), CustomerName: name})
	}
	return out, nil
}

// AvailableAddresses lista os endereços livres
func (s *EnderecamentoService) AvailableAddresses(ctx context.Context) ([]AvailableAddress, error) {
	addresses, err := s.addresses.List(ctx)
	if err != nil {
		return nil, err
	}

	available := enderecamento.AvailableAddresses(addresses)
	out := make([]AvailableAddress, 0, len(available))
	for _, a := range available {
		out = append(out, AvailableAddress{Address: a, AddressCode: a.Code(), FullAddress: a.FullAddress()})
	}
	return out, nil
}

// Create endereça um pacote disponível em um endereço livre. O endereço
// passa a ficar ocupado.
func (s *EnderecamentoService) Create(ctx context.Context, in CreateEnderecamentoInput) (*enderecamento.Enderecamento, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var pkg *takeup.Package
	for _, p := range enderecamento.AvailablePackages(snap.packages, snap.assignments) {
		if p.ID == in.PackageID {
			pkg = p
			break
		}
	}
	if pkg == nil {
		return nil, validation.FieldError("packageId", msgPackageUnavailable)
	}

	addr := address.FindByID(snap.addresses, in.AddressID)
	if addr == nil || !addr.IsEmpty() {
		return nil, validation.FieldError("addressId", msgAddressUnavailable)
	}

	now := s.now()
	var record *enderecamento.Record
	if s.ledger != nil {
		record, err = s.reserve(ctx, snap, in, now)
		if err != nil {
			return nil, err
		}
	}

	if err := addr.Fill(now); err != nil {
		return nil, validation.FieldError("addressId", msgAddressUnavailable)
	}
	if _, err := s.addresses.Update(ctx, addr.ID, addr.ToInput()); err != nil {
		if record != nil {
			if delErr := s.ledger.Delete(ctx, record.ID); delErr != nil {
				s.logger.Error("erro ao desfazer registro de endereçamento", "record_id", record.ID.String(), "error", delErr)
			}
		}
		return nil, err
	}

	e := enderecamento.New(addr, pkg)
	if record != nil {
		e.Pin(record)
	}
	enderecamento.SetCustomerNames([]*enderecamento.Enderecamento{e}, s.customerNames(ctx))

	s.logger.Info("pacote endereçado", "package_id", pkg.ID, "address_id", addr.ID)
	s.invalidator.Invalidate(ctx, pathEnderecamentos, pathAddresses, pathDashboard)
	return e, nil
}

// reserve grava o vínculo no banco antes de ocupar o endereço. Registros
// abandonados que envolvem o mesmo endereço ou pacote são descartados na mesma
// transação. Reservas recentes de outra criação são mantidas e a gravação falha
// pela restrição de unicidade.
func (s *EnderecamentoService) reserve(ctx context.Context, snap *snapshot, in CreateEnderecamentoInput, now time.Time) (*enderecamento.Record, error) {
	var discard []uuid.UUID
	for _, stale := range enderecamento.StaleRecords(snap.records, snap.assignments, now) {
		if stale.AddressID == in.AddressID || stale.PackageID == in.PackageID {
			discard = append(discard, stale.ID)
		}
	}

	record := enderecamento.NewRecord(in.AddressID, in.PackageID, now)
	if err := s.ledger.Reserve(ctx, record, discard); err != nil {
		switch {
		case errors.Is(err, enderecamento.ErrAddressAlreadyAssigned):
			return nil, validation.FieldError("addressId", msgAddressUnavailable)
		case errors.Is(err, enderecamento.ErrPackageAlreadyAssigned):
			return nil, validation.FieldError("packageId", msgPackageUnavailable)
		}
		return nil, err
	}
	return record, nil
}

// Remove libera o endereço, desfazendo o endereçamento
func (s *EnderecamentoService) Remove(ctx context.Context, addressID string) error {
	addr, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return err
	}

	if err := addr.Free(s.now()); err != nil {
		return validation.FieldError("addressId", msgAddressNotFilled)
	}
	if _, err := s.addresses.Update(ctx, addr.ID, addr.ToInput()); err != nil {
		return err
	}

	if s.ledger != nil {
		if err := s.ledger.DeleteByAddress(ctx, addr.ID); err != nil && !errors.Is(err, enderecamento.ErrRecordNotFound) {
			s.logger.Error("erro ao excluir registro de endereçamento", "address_id", addr.ID, "error", err)
		}
	}

	s.logger.Info("endereçamento removido", "address_id", addr.ID)
	s.invalidator.Invalidate(ctx, pathEnderecamentos, pathAddresses, pathDashboard)
	return nil
}

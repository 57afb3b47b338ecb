package enderecamento

import (
	"time"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
)

// ComputeAssignments reconstrói os endereçamentos a partir das listas do backend.
// Cada endereço ocupado, na ordem recebida, é pareado com o primeiro pacote
// ainda não pareado. Endereços ocupados sem pacote disponível são omitidos.
func ComputeAssignments(packages []*takeup.Package, addresses []*address.Address) []*Enderecamento {
	return ComputeAssignmentsWithLedger(packages, addresses, nil)
}

// ComputeAssignmentsWithLedger honra primeiro os vínculos registrados cujo
// endereço ainda está ocupado e cujo pacote ainda existe. Os demais endereços
// ocupados seguem a regra do primeiro pacote livre. O resultado mantém a ordem
// dos endereços.
func ComputeAssignmentsWithLedger(packages []*takeup.Package, addresses []*address.Address, records []*Record) []*Enderecamento {
	pinned := pinRecords(packages, addresses, records)

	matched := make(map[string]bool, len(pinned))
	for _, pin := range pinned {
		matched[pin.pkg.ID] = true
	}

	result := make([]*Enderecamento, 0)
	next := 0
	for _, a := range addresses {
		if !a.IsFilled() {
			continue
		}

		if pin, ok := pinned[a.ID]; ok {
			e := New(a, pin.pkg)
			e.Pin(pin.record)
			result = append(result, e)
			continue
		}

		for next < len(packages) && matched[packages[next].ID] {
			next++
		}
		if next == len(packages) {
			continue
		}

		p := packages[next]
		matched[p.ID] = true
		result = append(result, New(a, p))
	}

	return result
}

type pin struct {
	record *Record
	pkg    *takeup.Package
}

func pinRecords(packages []*takeup.Package, addresses []*address.Address, records []*Record) map[string]pin {
	pinned := make(map[string]pin, len(records))
	if len(records) == 0 {
		return pinned
	}

	packagesByID := make(map[string]*takeup.Package, len(packages))
	for _, p := range packages {
		packagesByID[p.ID] = p
	}
	filled := make(map[string]bool)
	for _, a := range addresses {
		if a.IsFilled() {
			filled[a.ID] = true
		}
	}

	usedPackages := make(map[string]bool, len(records))
	for _, r := range records {
		p, ok := packagesByID[r.PackageID]
		if !ok || !filled[r.AddressID] || usedPackages[r.PackageID] {
			continue
		}
		if _, taken := pinned[r.AddressID]; taken {
			continue
		}
		pinned[r.AddressID] = pin{record: r, pkg: p}
		usedPackages[r.PackageID] = true
	}
	return pinned
}

// ReservationGrace é o tempo em que um registro ainda não refletido no backend
// é tratado como reserva em andamento
const ReservationGrace = time.Minute

// StaleRecords retorna os registros que não correspondem a nenhum endereçamento
// atual e foram gravados há mais de ReservationGrace. Registros mais recentes
// podem pertencer a uma criação que ainda não ocupou o endereço.
func StaleRecords(records []*Record, assignments []*Enderecamento, now time.Time) []*Record {
	honored := make(map[string]bool, len(assignments))
	for _, e := range assignments {
		if e.RecordID != "" {
			honored[e.RecordID] = true
		}
	}

	cutoff := now.Add(-ReservationGrace)
	stale := make([]*Record, 0)
	for _, r := range records {
		if !honored[r.ID.String()] && r.AssignedAt.Before(cutoff) {
			stale = append(stale, r)
		}
	}
	return stale
}

// AvailablePackages retorna os pacotes que não participam de nenhum endereçamento
func AvailablePackages(packages []*takeup.Package, assignments []*Enderecamento) []*takeup.Package {
	assigned := make(map[string]bool, len(assignments))
	for _, e := range assignments {
		assigned[e.Package.ID] = true
	}

	available := make([]*takeup.Package, 0, len(packages))
	for _, p := range packages {
		if !assigned[p.ID] {
			available = append(available, p)
		}
	}
	return available
}

// AvailableAddresses retorna os endereços livres
func AvailableAddresses(addresses []*address.Address) []*address.Address {
	return address.FilterByStatus(addresses, address.StatusEmpty)
}

// FindByAddress localiza o endereçamento de um endereço
func FindByAddress(assignments []*Enderecamento, addressID string) *Enderecamento {
	for _, e := range assignments {
		if e.Address.ID == addressID {
			return e
		}
	}
	return nil
}

package enderecamento

import (
	"math"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
)

// RecentLimit é a quantidade de endereçamentos exibidos nas estatísticas
const RecentLimit = 5

// Stats resume a ocupação do armazém
type Stats struct {
	TotalEnderecamentos          int              `json:"totalEnderecamentos"`
	TotalPackagesAssigned        int              `json:"totalPackagesAssigned"`
	TotalPackagesUnassigned      int              `json:"totalPackagesUnassigned"`
	WarehouseOccupancyPercentage int              `json:"warehouseOccupancyPercentage"`
	AddressesOccupied            int              `json:"addressesOccupied"`
	AddressesAvailable           int              `json:"addressesAvailable"`
	TotalAddresses               int              `json:"totalAddresses"`
	RecentEnderecamentos         []*Enderecamento `json:"recentEnderecamentos"`
}

// OccupancyPercentage calcula o percentual de ocupação arredondado.
// Sem endereços a ocupação é zero.
func OccupancyPercentage(filled, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(filled) / float64(total) * 100))
}

// ComputeStats calcula as estatísticas de endereçamento
func ComputeStats(packages []*takeup.Package, addresses []*address.Address, assignments []*Enderecamento) Stats {
	filled := len(address.FilterByStatus(addresses, address.StatusFilled))
	empty := len(address.FilterByStatus(addresses, address.StatusEmpty))

	recent := assignments
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	return Stats{
		TotalEnderecamentos:          len(assignments),
		TotalPackagesAssigned:        len(assignments),
		TotalPackagesUnassigned:      len(packages) - len(assignments),
		WarehouseOccupancyPercentage: OccupancyPercentage(filled, len(addresses)),
		AddressesOccupied:            filled,
		AddressesAvailable:           empty,
		TotalAddresses:               len(addresses),
		RecentEnderecamentos:         recent,
	}
}

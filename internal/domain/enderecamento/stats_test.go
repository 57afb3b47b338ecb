package enderecamento

import (
	"testing"

	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/stretchr/testify/assert"
)

func TestOccupancyPercentage(t *testing.T) {
	assert.Equal(t, 0, OccupancyPercentage(0, 0))
	assert.Equal(t, 50, OccupancyPercentage(1, 2))
	assert.Equal(t, 33, OccupancyPercentage(1, 3))
	assert.Equal(t, 67, OccupancyPercentage(2, 3))
	assert.Equal(t, 100, OccupancyPercentage(4, 4))
}

func TestComputeStats(t *testing.T) {
	addresses := []*address.Address{
		addr("A1", address.StatusFilled),
		addr("A2", address.StatusEmpty),
		addr("A3", address.StatusFilled),
	}
	packages := pkgs("P1", "P2", "P3", "P4")
	assignments := ComputeAssignments(packages, addresses)

	stats := ComputeStats(packages, addresses, assignments)

	assert.Equal(t, 2, stats.TotalEnderecamentos)
	assert.Equal(t, 2, stats.TotalPackagesAssigned)
	assert.Equal(t, 2, stats.TotalPackagesUnassigned)
	assert.Equal(t, 67, stats.WarehouseOccupancyPercentage)
	assert.Equal(t, 2, stats.AddressesOccupied)
	assert.Equal(t, 1, stats.AddressesAvailable)
	assert.Equal(t, 3, stats.TotalAddresses)
	assert.Len(t, stats.RecentEnderecamentos, 2)
}

func TestComputeStats_NoAddresses(t *testing.T) {
	stats := ComputeStats(pkgs("P1"), nil, nil)

	assert.Zero(t, stats.WarehouseOccupancyPercentage)
	assert.Zero(t, stats.TotalAddresses)
	assert.Equal(t, 1, stats.TotalPackagesUnassigned)
}

func TestComputeStats_RecentIsCapped(t *testing.T) {
	var addresses []*address.Address
	var ids []string
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		addresses = append(addresses, addr("A"+id, address.StatusFilled))
		ids = append(ids, "P"+id)
	}
	packages := pkgs(ids...)

	stats := ComputeStats(packages, addresses, ComputeAssignments(packages, addresses))

	assert.Len(t, stats.RecentEnderecamentos, RecentLimit)
	assert.Equal(t, "A1", stats.RecentEnderecamentos[0].Address.ID)
}

package street

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_RecentByCreatedAt(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var streets []*Street
	for i := 0; i < 7; i++ {
		streets = append(streets, &Street{ID: int64(i + 1), Name: "Rua", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	stats := ComputeStats(streets)

	assert.Equal(t, 7, stats.Total)
	assert.Len(t, stats.Recent, RecentLimit)
	assert.Equal(t, int64(7), stats.Recent[0].ID)
	assert.Equal(t, int64(3), stats.Recent[4].ID)
	assert.Equal(t, int64(1), streets[0].ID, "a lista original não é reordenada")
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Recent)
}

func TestInput_Normalize(t *testing.T) {
	in := Input{Name: "  Rua A  "}
	in.Normalize()
	assert.Equal(t, "Rua A", in.Name)
}

package address

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_FillAndFree(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := &Address{ID: "A1", Status: StatusEmpty}

	require.NoError(t, a.Fill(now))
	assert.Equal(t, StatusFilled, a.Status)
	assert.Equal(t, now, a.UpdatedAt)

	assert.ErrorIs(t, a.Fill(now), ErrAlreadyFilled)

	require.NoError(t, a.Free(now))
	assert.Equal(t, StatusEmpty, a.Status)

	assert.ErrorIs(t, a.Free(now), ErrNotFilled)
}

func TestAddress_Code(t *testing.T) {
	tests := []struct {
		name   string
		street string
		number string
		want   string
	}{
		{"segunda palavra", "Rua Alfa", "7", "A-007"},
		{"minúscula", "rua beta", "12", "B-012"},
		{"palavra única", "Corredor", "5", "X-005"},
		{"número longo", "Rua Gama", "1234", "G-1234"},
		{"espaço duplo", "Rua  Delta", "1", "X-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Address{Street: StreetRef{Name: tt.street}, Number: tt.number}
			assert.Equal(t, tt.want, a.Code())
		})
	}
}

func TestAddress_FullAddress(t *testing.T) {
	a := &Address{Street: StreetRef{Name: "Rua A"}, Number: "10"}
	assert.Equal(t, "Rua A, 10", a.FullAddress())

	a.Complement = "Prateleira 2"
	assert.Equal(t, "Rua A, 10 - Prateleira 2", a.FullAddress())
}

func TestAddress_Matches(t *testing.T) {
	a := &Address{ID: "abc-123", Street: StreetRef{Name: "Rua Norte"}, Number: "15", Complement: "Fundos"}
	assert.True(t, a.Matches("norte"))
	assert.True(t, a.Matches("fundos"))
	assert.True(t, a.Matches("abc"))
	assert.False(t, a.Matches("sul"))
}

func TestFilterByStatus_KeepsOrder(t *testing.T) {
	list := []*Address{
		{ID: "A1", Status: StatusFilled},
		{ID: "A2", Status: StatusEmpty},
		{ID: "A3", Status: StatusFilled},
	}

	filled := FilterByStatus(list, StatusFilled)
	require.Len(t, filled, 2)
	assert.Equal(t, "A1", filled[0].ID)
	assert.Equal(t, "A3", filled[1].ID)

	empty := FilterByStatus(list, StatusEmpty)
	require.Len(t, empty, 1)
	assert.Equal(t, "A2", empty[0].ID)
}

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list := []*Address{
		{ID: "A1", Street: StreetRef{ID: 2, Name: "Rua B"}, Status: StatusFilled, CreatedAt: base},
		{ID: "A2", Street: StreetRef{ID: 1, Name: "Rua A"}, Status: StatusEmpty, CreatedAt: base.Add(time.Hour)},
		{ID: "A3", Street: StreetRef{ID: 2, Name: "Rua B"}, Status: StatusEmpty, CreatedAt: base.Add(2 * time.Hour)},
	}

	s := Summarize(list)

	assert.Equal(t, 3, s.TotalAddresses)
	assert.Equal(t, 2, s.EmptyAddresses)
	assert.Equal(t, 1, s.FilledAddresses)
	require.Len(t, s.AddressesByStreet, 2)
	assert.Equal(t, StreetSummary{StreetID: 2, StreetName: "Rua B", TotalAddresses: 2, EmptyAddresses: 1, FilledAddresses: 1}, s.AddressesByStreet[0])
	assert.Equal(t, StreetSummary{StreetID: 1, StreetName: "Rua A", TotalAddresses: 1, EmptyAddresses: 1}, s.AddressesByStreet[1])
	require.Len(t, s.RecentAddresses, 3)
	assert.Equal(t, "A3", s.RecentAddresses[0].ID)
	assert.Equal(t, "A1", list[0].ID)
}

func TestAddress_ToInput(t *testing.T) {
	a := &Address{Street: StreetRef{ID: 4, Name: "Rua D"}, Number: "3", Complement: "c", Status: StatusFilled}
	assert.Equal(t, Input{StreetID: 4, Number: "3", Complement: "c", Status: StatusFilled}, a.ToInput())
}

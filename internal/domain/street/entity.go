package street

import (
	"sort"
	"strings"
	"time"
)

// RecentLimit é a quantidade de ruas recentes exibidas nas estatísticas
const RecentLimit = 5

// Street representa uma rua do armazém
type Street struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input contém os dados aceitos na criação e atualização de ruas
type Input struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
}

// Stats resume as ruas cadastradas
type Stats struct {
	Total  int       `json:"total"`
	Recent []*Street `json:"recent"`
}

// ComputeStats calcula o total de ruas e as mais recentes
func ComputeStats(streets []*Street) Stats {
	recent := make([]*Street, len(streets))
	copy(recent, streets)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	return Stats{Total: len(streets), Recent: recent}
}

// Matches verifica se a rua corresponde ao termo de busca
func (s *Street) Matches(term string) bool {
	return strings.Contains(strings.ToLower(s.Name), term)
}

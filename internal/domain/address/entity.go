package address

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrAlreadyFilled = errors.New("endereço já está ocupado")
	ErrNotFilled     = errors.New("endereço não está ocupado")
)

// Status representa o estado de ocupação do endereço
type Status string

const (
	StatusEmpty  Status = "empty"
	StatusFilled Status = "filled"
)

// RecentLimit é a quantidade de endereços recentes exibidos no resumo
const RecentLimit = 5

// StreetRef é a referência à rua embutida no endereço
type StreetRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Address representa uma posição de armazenagem
type Address struct {
	ID         string    `json:"id"`
	Street     StreetRef `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input contém os dados aceitos na criação e atualização de endereços
type Input struct {
	StreetID   int64  `json:"streetId" validate:"required,min=1"`
	Number     string `json:"number" validate:"required,max=50"`
	Complement string `json:"complement" validate:"max=255"`
	Status     Status `json:"status" validate:"required,oneof=empty filled"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *Input) Normalize() {
	in.Number = strings.TrimSpace(in.Number)
	in.Complement = strings.TrimSpace(in.Complement)
}

// IsFilled verifica se o endereço está ocupado
func (a *Address) IsFilled() bool {
	return a.Status == StatusFilled
}

// IsEmpty verifica se o endereço está livre
func (a *Address) IsEmpty() bool {
	return a.Status == StatusEmpty
}

// Fill marca o endereço como ocupado
func (a *Address) Fill(now time.Time) error {
	if a.Status != StatusEmpty {
		return ErrAlreadyFilled
	}
	a.Status = StatusFilled
	a.UpdatedAt = now
	return nil
}

// Free libera o endereço
func (a *Address) Free(now time.Time) error {
	if a.Status != StatusFilled {
		return ErrNotFilled
	}
	a.Status = StatusEmpty
	a.UpdatedAt = now
	return nil
}

// ToInput monta o corpo de atualização com o estado atual do endereço
func (a *Address) ToInput() Input {
	return Input{
		StreetID:   a.Street.ID,
		Number:     a.Number,
		Complement: a.Complement,
		Status:     a.Status,
	}
}

// Code retorna o código legível do endereço, como "A-007".
// O prefixo é a inicial da segunda palavra do nome da rua.
func (a *Address) Code() string {
	prefix := "X"
	if words := strings.Split(a.Street.Name, " "); len(words) > 1 && words[1] != "" {
		prefix = strings.ToUpper(string([]rune(words[1])[0]))
	}

	number := a.Number
	if n := len([]rune(number)); n < 3 {
		number = strings.Repeat("0", 3-n) + number
	}
	return fmt.Sprintf("%s-%s", prefix, number)
}

// FullAddress retorna o endereço completo para exibição
func (a *Address) FullAddress() string {
	full := fmt.Sprintf("%s, %s", a.Street.Name, a.Number)
	if a.Complement != "" {
		full += " - " + a.Complement
	}
	return full
}

// Matches verifica se o endereço corresponde ao termo de busca
func (a *Address) Matches(term string) bool {
	return strings.Contains(strings.ToLower(a.Number), term) ||
		strings.Contains(strings.ToLower(a.Complement), term) ||
		strings.Contains(strings.ToLower(a.Street.Name), term) ||
		strings.Contains(strings.ToLower(a.ID), term)
}

// FilterByStatus retorna os endereços com o status informado, na ordem original
func FilterByStatus(addresses []*Address, status Status) []*Address {
	filtered := make([]*Address, 0, len(addresses))
	for _, a := range addresses {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterByStreet retorna os endereços de uma rua
func FilterByStreet(addresses []*Address, streetID int64) []*Address {
	filtered := make([]*Address, 0)
	for _, a := range addresses {
		if a.Street.ID == streetID {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FindByID localiza um endereço na lista
func FindByID(addresses []*Address, id string) *Address {
	for _, a := range addresses {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// StreetSummary agrega a ocupação dos endereços de uma rua
type StreetSummary struct {
	StreetID        int64  `json:"streetId"`
	StreetName      string `json:"streetName"`
	TotalAddresses  int    `json:"totalAddresses"`
	EmptyAddresses  int    `json:"emptyAddresses"`
	FilledAddresses int    `json:"filledAddresses"`
}

// Summary resume a ocupação dos endereços
type Summary struct {
	TotalAddresses    int             `json:"totalAddresses"`
	EmptyAddresses    int             `json:"emptyAddresses"`
	FilledAddresses   int             `json:"filledAddresses"`
	AddressesByStreet []StreetSummary `json:"addressesByStreet"`
	RecentAddresses   []*Address      `json:"recentAddresses"`
}

// Summarize calcula o resumo de ocupação. As ruas aparecem na ordem em que
// surgem na lista.
func Summarize(addresses []*Address) Summary {
	summary := Summary{
		TotalAddresses:    len(addresses),
		AddressesByStreet: make([]StreetSummary, 0),
	}

	index := make(map[int64]int)
	for _, a := range addresses {
		i, ok := index[a.Street.ID]
		if !ok {
			i = len(summary.AddressesByStreet)
			index[a.Street.ID] = i
			summary.AddressesByStreet = append(summary.AddressesByStreet, StreetSummary{
				StreetID:   a.Street.ID,
				StreetName: a.Street.Name,
			})
		}

		s := &summary.AddressesByStreet[i]
		s.TotalAddresses++
		if a.Status == StatusEmpty {
			summary.EmptyAddresses++
			s.EmptyAddresses++
		} else {
			summary.FilledAddresses++
			s.FilledAddresses++
		}
	}

	recent := make([]*Address, len(addresses))
	copy(recent, addresses)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	summary.RecentAddresses = recent

	return summary
}

package customer

import (
	"strings"
	"time"
)

// Customer representa um cliente dono de take-ups
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input contém os dados aceitos na criação de clientes
type Input struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
	CNPJ string `json:"cnpj" validate:"required,cnpj"`
}

// UpdateInput contém os dados aceitos na atualização de clientes.
// Campos vazios são mantidos.
type UpdateInput struct {
	Name string `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	CNPJ string `json:"cnpj,omitempty" validate:"omitempty,cnpj"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.CNPJ = strings.TrimSpace(in.CNPJ)
}

// Normalize remove espaços nas extremidades dos campos
func (in *UpdateInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.CNPJ = strings.TrimSpace(in.CNPJ)
}

// Option é um par valor/rótulo usado em campos de seleção
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToOption converte o cliente em uma opção de seleção
func (c *Customer) ToOption() Option {
	return Option{Value: c.ID, Label: c.Name}
}

// Matches verifica se o cliente corresponde ao termo de busca
func (c *Customer) Matches(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.CNPJ), term)
}

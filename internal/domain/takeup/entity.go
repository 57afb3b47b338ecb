package takeup

import (
	"strings"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/customer"
)

// TakeUp representa um lote de entrada de pacotes de um cliente
type TakeUp struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customerId"`
	Customer   *customer.Customer `json:"customer,omitempty"`
	Packages   []*Package         `json:"packages"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// Input contém os dados aceitos na criação e atualização de take-ups
type Input struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *Input) Normalize() {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
}

// Code retorna o código curto do take-up
func (t *TakeUp) Code() string {
	return ShortCode(t.ID)
}

// CustomerName retorna o nome do cliente, quando disponível
func (t *TakeUp) CustomerName() string {
	if t.Customer == nil {
		return ""
	}
	return t.Customer.Name
}

// Matches verifica se o take-up corresponde ao termo de busca
func (t *TakeUp) Matches(term string) bool {
	if t.Customer != nil && t.Customer.Matches(term) {
		return true
	}
	return strings.Contains(strings.ToLower(t.ID), term)
}

// FilterByCustomer retorna os take-ups de um cliente
func FilterByCustomer(takeUps []*TakeUp, customerID string) []*TakeUp {
	filtered := make([]*TakeUp, 0)
	for _, t := range takeUps {
		if t.CustomerID == customerID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

package enderecamento

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/armazem/internal/domain/address"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
)

// UnknownCustomer é exibido quando o cliente do pacote não pôde ser resolvido
const UnknownCustomer = "Cliente não identificado"

// Enderecamento representa o vínculo entre um pacote e o endereço que o armazena
type Enderecamento struct {
	ID           string           `json:"id"`
	RecordID     string           `json:"recordId,omitempty"`
	Package      *takeup.Package  `json:"package"`
	Address      *address.Address `json:"address"`
	AssignedAt   *time.Time       `json:"assignedAt,omitempty"`
	AddressCode  string           `json:"addressCode"`
	StreetName   string           `json:"streetName"`
	FullAddress  string           `json:"fullAddress"`
	CustomerName string           `json:"customerName"`
	TakeUpCode   string           `json:"takeUpCode"`
}

// SyntheticID monta o identificador de um vínculo que não está registrado
func SyntheticID(addressID, packageID string) string {
	return fmt.Sprintf("END_%s_%s", addressID, packageID)
}

// New cria o endereçamento de um pacote em um endereço com identificador sintético
func New(a *address.Address, p *takeup.Package) *Enderecamento {
	return &Enderecamento{
		ID:           SyntheticID(a.ID, p.ID),
		Package:      p,
		Address:      a,
		AddressCode:  a.Code(),
		StreetName:   a.Street.Name,
		FullAddress:  a.FullAddress(),
		CustomerName: UnknownCustomer,
		TakeUpCode:   p.TakeUpCode(),
	}
}

// Pin associa o endereçamento ao registro persistido
func (e *Enderecamento) Pin(r *Record) {
	e.ID = r.ID.String()
	e.RecordID = r.ID.String()
	assignedAt := r.AssignedAt
	e.AssignedAt = &assignedAt
}

// SetCustomerNames preenche o nome do cliente a partir do take-up do pacote
func SetCustomerNames(list []*Enderecamento, namesByTakeUp map[string]string) {
	for _, e := range list {
		if name, ok := namesByTakeUp[e.Package.TakeUpID]; ok && name != "" {
			e.CustomerName = name
		}
	}
}

// Matches verifica se o endereçamento corresponde ao termo de busca
func (e *Enderecamento) Matches(term string) bool {
	for _, field := range []string{
		e.Package.PackageNumber,
		e.Package.Lot,
		e.AddressCode,
		e.StreetName,
		e.CustomerName,
		e.TakeUpCode,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Record é o registro persistido de um endereçamento
type Record struct {
	ID         uuid.UUID `json:"id"`
	AddressID  string    `json:"addressId"`
	PackageID  string    `json:"packageId"`
	AssignedAt time.Time `json:"assignedAt"`
}

// NewRecord cria um novo registro de endereçamento
func NewRecord(addressID, packageID string, now time.Time) *Record {
	return &Record{
		ID:         uuid.New(),
		AddressID:  addressID,
		PackageID:  packageID,
		AssignedAt: now,
	}
}

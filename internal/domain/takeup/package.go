package takeup

import (
	"strings"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/shopspring/decimal"
)

func init() {
	// Pesos são serializados como número JSON.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	// MinWeight é o menor peso aceito para um pacote
	MinWeight = decimal.RequireFromString("0.01")
	// MaxWeight é o maior peso aceito para um pacote
	MaxWeight = decimal.RequireFromString("99999.99")
)

const codeLength = 8

// Package representa um pacote recebido em um take-up
type Package struct {
	ID            string          `json:"id"`
	PackageNumber string          `json:"packageNumber"`
	Lot           string          `json:"lot"`
	Weight        decimal.Decimal `json:"weight"`
	TakeUpID      string          `json:"takeUpId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PackageInput contém os dados aceitos na criação de pacotes
type PackageInput struct {
	PackageNumber string          `json:"packageNumber" validate:"required,max=100"`
	Lot           string          `json:"lot" validate:"required,max=100"`
	Weight        decimal.Decimal `json:"weight"`
	TakeUpID      string          `json:"takeUpId" validate:"required,uuid"`
}

// PackageUpdateInput contém os dados aceitos na atualização de pacotes
type PackageUpdateInput struct {
	PackageNumber string          `json:"packageNumber" validate:"required,max=100"`
	Lot           string          `json:"lot" validate:"required,max=100"`
	Weight        decimal.Decimal `json:"weight"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *PackageInput) Normalize() {
	in.PackageNumber = strings.TrimSpace(in.PackageNumber)
	in.Lot = strings.TrimSpace(in.Lot)
	in.TakeUpID = strings.TrimSpace(in.TakeUpID)
}

// Validate valida os campos do pacote, incluindo a faixa de peso
func (in PackageInput) Validate() error {
	return mergeWeight(validation.Struct(in), in.Weight)
}

// Normalize remove espaços nas extremidades dos campos
func (in *PackageUpdateInput) Normalize() {
	in.PackageNumber = strings.TrimSpace(in.PackageNumber)
	in.Lot = strings.TrimSpace(in.Lot)
}

// Validate valida os campos do pacote, incluindo a faixa de peso
func (in PackageUpdateInput) Validate() error {
	return mergeWeight(validation.Struct(in), in.Weight)
}

func mergeWeight(err error, weight decimal.Decimal) error {
	verr, ok := validation.As(err)
	if !ok {
		if err != nil {
			return err
		}
		verr = validation.NewError()
	}

	if msg := CheckWeight(weight); msg != "" {
		verr.Add("weight", msg)
	}
	return verr.OrNil()
}

// CheckWeight retorna a mensagem de erro para um peso fora da faixa aceita
func CheckWeight(weight decimal.Decimal) string {
	switch {
	case weight.LessThan(MinWeight):
		return "Peso deve ser maior que 0"
	case weight.GreaterThan(MaxWeight):
		return "Peso deve ser no máximo 99999.99 kg"
	default:
		return ""
	}
}

// TakeUpCode retorna o código curto do take-up ao qual o pacote pertence
func (p *Package) TakeUpCode() string {
	return ShortCode(p.TakeUpID)
}

// Matches verifica se o pacote corresponde ao termo de busca
func (p *Package) Matches(term string) bool {
	return strings.Contains(strings.ToLower(p.PackageNumber), term) ||
		strings.Contains(strings.ToLower(p.Lot), term) ||
		strings.Contains(strings.ToLower(p.ID), term)
}

// ShortCode retorna os primeiros caracteres de um identificador
func ShortCode(id string) string {
	if len(id) <= codeLength {
		return id
	}
	return id[:codeLength]
}

// HasPackageNumber verifica se já existe um pacote com o número informado
// no take-up, ignorando o pacote excludeID
func HasPackageNumber(packages []*Package, takeUpID, packageNumber, excludeID string) bool {
	for _, p := range packages {
		if p.TakeUpID == takeUpID && p.PackageNumber == packageNumber && p.ID != excludeID {
			return true
		}
	}
	return false
}

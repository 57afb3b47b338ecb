package expedicao

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/shopspring/decimal"
)

var (
	ErrTerminalStatus    = errors.New("expedição já foi entregue")
	ErrInvalidTransition = errors.New("transição de status inválida")
	ErrUnknownStatus     = errors.New("status de expedição desconhecido")
)

// Status representa a etapa da expedição
type Status string

const (
	StatusPreparando Status = "Preparando"
	StatusExpedido   Status = "Expedido"
	StatusEmTransito Status = "Em Trânsito"
	StatusEntregue   Status = "Entregue"
)

// Sequence é a ordem fixa das etapas de uma expedição
var Sequence = []Status{StatusPreparando, StatusExpedido, StatusEmTransito, StatusEntregue}

// IsValid verifica se o status pertence à sequência
func (s Status) IsValid() bool {
	return s.index() >= 0
}

func (s Status) index() int {
	for i, st := range Sequence {
		if st == s {
			return i
		}
	}
	return -1
}

// NextStatus retorna a etapa seguinte. O segundo retorno é false quando
// o status é terminal ou desconhecido.
func NextStatus(current Status) (Status, bool) {
	i := current.index()
	if i < 0 || i == len(Sequence)-1 {
		return "", false
	}
	return Sequence[i+1], true
}

// Expedicao representa uma expedição de pacotes
type Expedicao struct {
	ID               string            `json:"id"`
	Code             string            `json:"code"`
	Destination      string            `json:"destination"`
	Responsible      string            `json:"responsible"`
	Carrier          string            `json:"carrier"`
	Tracking         string            `json:"tracking"`
	Status           Status            `json:"status"`
	Packages         []*takeup.Package `json:"packages"`
	TotalWeight      decimal.Decimal   `json:"totalWeight"`
	PackageCount     int               `json:"packageCount"`
	ExpectedDelivery *time.Time        `json:"expectedDelivery,omitempty"`
	ActualDelivery   *time.Time        `json:"actualDelivery,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Input contém os dados aceitos na criação de expedições
type Input struct {
	Code             string     `json:"code" validate:"required,max=50"`
	Destination      string     `json:"destination" validate:"required,max=255"`
	Responsible      string     `json:"responsible" validate:"required,max=100"`
	Carrier          string     `json:"carrier" validate:"required,max=100"`
	Tracking         string     `json:"tracking" validate:"required,max=100"`
	PackageIDs       []string   `json:"packageIds" validate:"min=1,dive,uuid"`
	ExpectedDelivery *time.Time `json:"expectedDelivery,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// Normalize remove espaços nas extremidades dos campos
func (in *Input) Normalize() {
	in.Code = strings.TrimSpace(in.Code)
	in.Destination = strings.TrimSpace(in.Destination)
	in.Responsible = strings.TrimSpace(in.Responsible)
	in.Carrier = strings.TrimSpace(in.Carrier)
	in.Tracking = strings.TrimSpace(in.Tracking)
	in.Notes = strings.TrimSpace(in.Notes)
}

// StatusChange descreve a atualização de status enviada ao backend
type StatusChange struct {
	Status         Status
	Notes          string
	ActualDelivery *time.Time
}

// Advance move a expedição para a próxima etapa. Ao chegar em Entregue a
// data de entrega real é registrada.
func (e *Expedicao) Advance(now time.Time) (StatusChange, error) {
	next, ok := NextStatus(e.Status)
	if !ok {
		if !e.Status.IsValid() {
			return StatusChange{}, ErrUnknownStatus
		}
		return StatusChange{}, ErrTerminalStatus
	}
	return e.apply(next, now), nil
}

// TransitionTo move a expedição para target, que deve ser a próxima etapa
func (e *Expedicao) TransitionTo(target Status, now time.Time) (StatusChange, error) {
	if !target.IsValid() {
		return StatusChange{}, ErrUnknownStatus
	}
	next, ok := NextStatus(e.Status)
	if !ok {
		if !e.Status.IsValid() {
			return StatusChange{}, ErrUnknownStatus
		}
		return StatusChange{}, ErrTerminalStatus
	}
	if target != next {
		return StatusChange{}, fmt.Errorf("%w: de %q para %q", ErrInvalidTransition, e.Status, target)
	}
	return e.apply(next, now), nil
}

func (e *Expedicao) apply(next Status, now time.Time) StatusChange {
	e.Status = next
	e.UpdatedAt = now

	change := StatusChange{Status: next}
	if next == StatusEntregue {
		delivered := now
		e.ActualDelivery = &delivered
		change.ActualDelivery = &delivered
	}
	return change
}

// IsOverdue indica se a entrega prevista já passou sem a expedição ter sido entregue
func (e *Expedicao) IsOverdue(now time.Time) bool {
	return e.ExpectedDelivery != nil && now.After(*e.ExpectedDelivery) && e.Status != StatusEntregue
}

// DaysInTransit retorna os dias completos desde a criação. Expedições em
// preparação ainda não estão em trânsito.
func (e *Expedicao) DaysInTransit(now time.Time) int {
	if e.Status == StatusPreparando {
		return 0
	}
	return int(math.Floor(now.Sub(e.CreatedAt).Hours() / 24))
}

// PackageTotal retorna a quantidade de pacotes da expedição
func (e *Expedicao) PackageTotal() int {
	if len(e.Packages) > 0 {
		return len(e.Packages)
	}
	return e.PackageCount
}

// Weight retorna o peso total dos pacotes da expedição
func (e *Expedicao) Weight() decimal.Decimal {
	if len(e.Packages) > 0 {
		return takeup.TotalWeight(e.Packages)
	}
	return takeup.Round2(e.TotalWeight)
}

// TakeUpCodes retorna os códigos distintos dos take-ups dos pacotes
func (e *Expedicao) TakeUpCodes() []string {
	seen := make(map[string]bool)
	codes := make([]string, 0)
	for _, p := range e.Packages {
		code := p.TakeUpCode()
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

// Matches verifica se a expedição corresponde ao termo de busca
func (e *Expedicao) Matches(term string) bool {
	for _, field := range []string{e.Code, e.Destination, e.Responsible, e.Carrier, e.Tracking, string(e.Status)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

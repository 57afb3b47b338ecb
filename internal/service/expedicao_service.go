package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/armazem/internal/adapter/notifier"
	"github.com/hugohenrick/armazem/internal/domain/expedicao"
	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/hugohenrick/armazem/internal/domain/validation"
	"github.com/hugohenrick/armazem/pkg/logger"
)

const (
	msgTerminalStatus = "Expedição já foi entregue"
	msgUnknownStatus  = "Status inválido"
	msgInvalidNext    = "O próximo status permitido é %q"
)

var expedicaoSortKeys = sortKeys[*ExpedicaoView]{
	"code":        func(a, b *ExpedicaoView) int { return compareStrings(a.Code, b.Code) },
	"destination": func(a, b *ExpedicaoView) int { return compareStrings(a.Destination, b.Destination) },
	"status": func(a, b *ExpedicaoView) int {
		return compareInts(int64(statusIndex(a.Status)), int64(statusIndex(b.Status)))
	},
	"createdAt":        func(a, b *ExpedicaoView) int { return a.CreatedAt.Compare(b.CreatedAt) },
	"expectedDelivery": func(a, b *ExpedicaoView) int { return compareOptionalTimes(a.ExpectedDelivery, b.ExpectedDelivery) },
}

// ExpedicaoView é a expedição com os campos calculados para exibição
type ExpedicaoView struct {
	*expedicao.Expedicao
	TakeUpCodes   []string          `json:"takeUpCodes"`
	DaysInTransit int               `json:"daysInTransit"`
	IsOverdue     bool              `json:"isOverdue"`
	NextStatus    *expedicao.Status `json:"nextStatus"`
}

// StatusUpdateInput contém a mudança de status pedida
type StatusUpdateInput struct {
	Status expedicao.Status `json:"status" validate:"required"`
	Notes  string           `json:"notes" validate:"max=500"`
}

// ExpedicaoService reúne as ações sobre expedições
type ExpedicaoService struct {
	repo        expedicao.Repository
	invalidator notifier.Invalidator
	logger      logger.Logger
	now         Clock
}

// NewExpedicaoService cria uma nova instância de ExpedicaoService
func NewExpedicaoService(repo expedicao.Repository, invalidator notifier.Invalidator, logger logger.Logger, now Clock) *ExpedicaoService {
	return &ExpedicaoService{repo: repo, invalidator: invalidator, logger: logger, now: now}
}

func (s *ExpedicaoService) view(e *expedicao.Expedicao, now time.Time) *ExpedicaoView {
	e.TotalWeight = e.Weight()
	e.PackageCount = e.PackageTotal()

	v := &ExpedicaoView{
		Expedicao:     e,
		TakeUpCodes:   e.TakeUpCodes(),
		DaysInTransit: e.DaysInTransit(now),
		IsOverdue:     e.IsOverdue(now),
	}
	if next, ok := expedicao.NextStatus(e.Status); ok {
		v.NextStatus = &next
	}
	return v
}

func (s *ExpedicaoService) views(list []*expedicao.Expedicao) []*ExpedicaoView {
	now := s.now()
	out := make([]*ExpedicaoView, 0, len(list))
	for _, e := range list {
		out = append(out, s.view(e, now))
	}
	return out
}

// List lista as expedições. Com termo de busca a consulta é feita no backend.
func (s *ExpedicaoService) List(ctx context.Context, params ListParams) (Page[*ExpedicaoView], error) {
	var (
		items []*expedicao.Expedicao
		err   error
	)
	if term := strings.TrimSpace(params.Query); term != "" {
		items, err = s.repo.Search(ctx, term)
	} else {
		items, err = s.repo.List(ctx)
	}
	if err != nil {
		return Page[*ExpedicaoView]{}, err
	}

	views := s.views(items)
	order(views, expedicaoSortKeys, params)
	return paginate(views, params.Page, params.PageSize), nil
}

// Get busca uma expedição pelo ID
func (s *ExpedicaoService) Get(ctx context.Context, id string) (*ExpedicaoView, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(e, s.now()), nil
}

// Create cria uma expedição em preparação
func (s *ExpedicaoService) Create(ctx context.Context, in expedicao.Input) (*ExpedicaoView, error) {
	in.Normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Info("expedição criada", "id", created.ID, "code", created.Code, "packages", len(in.PackageIDs))
	s.invalidator.Invalidate(ctx, pathExpedicoes)
	return s.view(created, s.now()), nil
}

// UpdateStatus move a expedição para o status pedido, que deve ser o
// próximo da sequência
func (s *ExpedicaoService) UpdateStatus(ctx context.Context, id string, in StatusUpdateInput) (*ExpedicaoView, error) {
	in.Notes = strings.TrimSpace(in.Notes)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := e.TransitionTo(in.Status, s.now())
	if err != nil {
		return nil, statusError(e.Status, err)
	}
	change.Notes = in.Notes

	return s.save(ctx, e, change)
}

// Advance move a expedição para a próxima etapa
func (s *ExpedicaoService) Advance(ctx context.Context, id string) (*ExpedicaoView, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := e.Advance(s.now())
	if err != nil {
		return nil, statusError(e.Status, err)
	}

	return s.save(ctx, e, change)
}

func (s *ExpedicaoService) save(ctx context.Context, e *expedicao.Expedicao, change expedicao.StatusChange) (*ExpedicaoView, error) {
	updated, err := s.repo.UpdateStatus(ctx, e.ID, change)
	if err != nil {
		return nil, err
	}
	// Backends que respondem sem corpo mantêm o estado calculado localmente.
	if updated == nil || updated.ID == "" {
		updated = e
	}

	s.logger.Info("status da expedição atualizado", "id", e.ID, "status", string(change.Status))
	s.invalidator.Invalidate(ctx, pathExpedicoes)
	return s.view(updated, s.now()), nil
}

// Delete remove uma expedição
func (s *ExpedicaoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("expedição excluída", "id", id)
	s.invalidator.Invalidate(ctx, pathExpedicoes)
	return nil
}

// Stats retorna as estatísticas de expedição
func (s *ExpedicaoService) Stats(ctx context.Context) (expedicao.Stats, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return expedicao.Stats{}, err
	}
	return expedicao.ComputeStats(items, s.now()), nil
}

// AvailablePackages lista os pacotes disponíveis para expedição
func (s *ExpedicaoService) AvailablePackages(ctx context.Context) ([]*takeup.Package, error) {
	return s.repo.AvailablePackages(ctx)
}

func statusError(current expedicao.Status, err error) error {
	switch {
	case errors.Is(err, expedicao.ErrTerminalStatus):
		return validation.FieldError("status", msgTerminalStatus)
	case errors.Is(err, expedicao.ErrInvalidTransition):
		next, _ := expedicao.NextStatus(current)
		return validation.FieldError("status", fmt.Sprintf(msgInvalidNext, next))
	case errors.Is(err, expedicao.ErrUnknownStatus):
		return validation.FieldError("status", msgUnknownStatus)
	}
	return err
}

func statusIndex(s expedicao.Status) int {
	for i, st := range expedicao.Sequence {
		if st == s {
			return i
		}
	}
	return len(expedicao.Sequence)
}

func compareOptionalTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

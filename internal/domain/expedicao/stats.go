package expedicao

import (
	"sort"
	"time"

	"github.com/hugohenrick/armazem/internal/domain/takeup"
	"github.com/shopspring/decimal"
)

// RecentLimit é a quantidade de expedições recentes exibidas nas estatísticas
const RecentLimit = 5

// Stats resume as expedições cadastradas
type Stats struct {
	TotalExpedicoes       int             `json:"totalExpedicoes"`
	TotalPackagesShipped  int             `json:"totalPackagesShipped"`
	ExpeditionsInProgress int             `json:"expeditionsInProgress"`
	ExpeditionsDelivered  int             `json:"expeditionsDelivered"`
	ExpeditionsOverdue    int             `json:"expeditionsOverdue"`
	AverageTransitDays    decimal.Decimal `json:"averageTransitDays"`
	TotalWeightShipped    decimal.Decimal `json:"totalWeightShipped"`
	RecentExpedicoes      []*Expedicao    `json:"recentExpedicoes"`
	StatusBreakdown       map[Status]int  `json:"statusBreakdown"`
}

// ComputeStats calcula as estatísticas das expedições. Pacotes e peso
// expedidos consideram apenas expedições que já saíram da preparação.
func ComputeStats(expedicoes []*Expedicao, now time.Time) Stats {
	stats := Stats{
		TotalExpedicoes:    len(expedicoes),
		AverageTransitDays: decimal.Zero,
		TotalWeightShipped: decimal.Zero,
		StatusBreakdown:    make(map[Status]int, len(Sequence)),
	}
	for _, s := range Sequence {
		stats.StatusBreakdown[s] = 0
	}

	transitDays := 0
	shipped := 0
	for _, e := range expedicoes {
		stats.StatusBreakdown[e.Status]++

		if e.Status == StatusEntregue {
			stats.ExpeditionsDelivered++
		} else {
			stats.ExpeditionsInProgress++
		}
		if e.IsOverdue(now) {
			stats.ExpeditionsOverdue++
		}
		if e.Status != StatusPreparando {
			shipped++
			transitDays += e.DaysInTransit(now)
			stats.TotalPackagesShipped += e.PackageTotal()
			stats.TotalWeightShipped = stats.TotalWeightShipped.Add(e.Weight())
		}
	}

	stats.TotalWeightShipped = takeup.Round2(stats.TotalWeightShipped)
	if shipped > 0 {
		stats.AverageTransitDays = takeup.Round2(
			decimal.NewFromInt(int64(transitDays)).Div(decimal.NewFromInt(int64(shipped))),
		)
	}

	recent := make([]*Expedicao, len(expedicoes))
	copy(recent, expedicoes)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	stats.RecentExpedicoes = recent

	return stats
}

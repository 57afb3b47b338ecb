package takeup

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RecentLimit é a quantidade de take-ups recentes exibidos nas estatísticas
const RecentLimit = 5

// RecentPackagesLimit é a quantidade de pacotes recentes exibidos nas estatísticas
const RecentPackagesLimit = 10

// Round2 arredonda um valor para duas casas decimais
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// TotalWeight soma o peso dos pacotes, arredondado para duas casas
func TotalWeight(packages []*Package) decimal.Decimal {
	total := decimal.Zero
	for _, p := range packages {
		total = total.Add(p.Weight)
	}
	return Round2(total)
}

// AverageWeight calcula o peso médio dos pacotes, arredondado para duas casas
func AverageWeight(packages []*Package) decimal.Decimal {
	if len(packages) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, p := range packages {
		total = total.Add(p.Weight)
	}
	return Round2(total.Div(decimal.NewFromInt(int64(len(packages)))))
}

// PackageStats resume os pacotes cadastrados
type PackageStats struct {
	TotalPackages  int             `json:"totalPackages"`
	TotalWeight    decimal.Decimal `json:"totalWeight"`
	AvgWeight      decimal.Decimal `json:"avgWeight"`
	MinWeight      decimal.Decimal `json:"minWeight"`
	MaxWeight      decimal.Decimal `json:"maxWeight"`
	RecentPackages []*Package      `json:"recentPackages"`
}

// ComputePackageStats calcula as estatísticas de peso dos pacotes
func ComputePackageStats(packages []*Package) PackageStats {
	stats := PackageStats{
		TotalPackages: len(packages),
		TotalWeight:   TotalWeight(packages),
		AvgWeight:     AverageWeight(packages),
		MinWeight:     decimal.Zero,
		MaxWeight:     decimal.Zero,
	}

	for i, p := range packages {
		if i == 0 || p.Weight.LessThan(stats.MinWeight) {
			stats.MinWeight = p.Weight
		}
		if i == 0 || p.Weight.GreaterThan(stats.MaxWeight) {
			stats.MaxWeight = p.Weight
		}
	}
	stats.MinWeight = Round2(stats.MinWeight)
	stats.MaxWeight = Round2(stats.MaxWeight)

	recent := make([]*Package, len(packages))
	copy(recent, packages)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentPackagesLimit {
		recent = recent[:RecentPackagesLimit]
	}
	stats.RecentPackages = recent

	return stats
}

// Stats resume os take-ups cadastrados
type Stats struct {
	TotalTakeUps         int             `json:"totalTakeUps"`
	TotalPackages        int             `json:"totalPackages"`
	NewTakeUpsThisMonth  int             `json:"newTakeUpsThisMonth"`
	AvgPackagesPerTakeUp decimal.Decimal `json:"avgPackagesPerTakeUp"`
	RecentTakeUps        []*TakeUp       `json:"recentTakeUps"`
}

// ComputeStats calcula as estatísticas dos take-ups. Um take-up é novo
// quando foi criado a partir do primeiro dia do mês de now.
func ComputeStats(takeUps []*TakeUp, now time.Time) Stats {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := Stats{
		TotalTakeUps:         len(takeUps),
		AvgPackagesPerTakeUp: decimal.Zero,
	}
	for _, t := range takeUps {
		stats.TotalPackages += len(t.Packages)
		if !t.CreatedAt.Before(startOfMonth) {
			stats.NewTakeUpsThisMonth++
		}
	}
	if len(takeUps) > 0 {
		stats.AvgPackagesPerTakeUp = Round2(
			decimal.NewFromInt(int64(stats.TotalPackages)).Div(decimal.NewFromInt(int64(len(takeUps)))),
		)
	}

	recent := make([]*TakeUp, len(takeUps))
	copy(recent, takeUps)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	stats.RecentTakeUps = recent

	return stats
}

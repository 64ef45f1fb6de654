package analytics

import (
	"sort"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

func buildRisk(sim simulation.Result, profile entities.DemandMetrics, periodDays int, cost entities.CostBreakdown) entities.Risk {
	stockoutDays := 0
	for _, d := range sim.StockEvolution {
		if d.Stock < 0 {
			stockoutDays++
		}
	}

	risk := entities.Risk{
		DemandUncertaintyCV:    profile.CV,
		DemandUncertaintyLabel: uncertaintyLabel(profile.CV),
	}
	if periodDays > 0 {
		risk.StockoutProbability = float64(stockoutDays) / float64(periodDays)
		risk.ExpectedStockoutsPerYear = risk.StockoutProbability * 365
	}

	risk.ValueAtRisk, risk.ConditionalValueAtRisk = valueAtRisk(sim.StockEvolution, cost)
	return risk
}

func uncertaintyLabel(cv float64) entities.UncertaintyLabel {
	switch {
	case cv <= 0.25:
		return entities.UncertaintyLow
	case cv <= 0.75:
		return entities.UncertaintyModerate
	default:
		return entities.UncertaintyHigh
	}
}

// valueAtRisk treats each day's negative-stock magnitude, priced at the
// cost basis's stockout rate, as a loss sample and reports the 95th
// percentile (VaR) and the mean of everything beyond it (CVaR).
func valueAtRisk(evolution entities.StockEvolution, cost entities.CostBreakdown) (float64, float64) {
	losses := make([]float64, 0, len(evolution))
	for _, d := range evolution {
		if d.Stock < 0 {
			losses = append(losses, -d.Stock)
		}
	}
	if len(losses) == 0 {
		return 0, 0
	}
	sort.Float64s(losses)

	idx := int(float64(len(losses)) * 0.95)
	if idx >= len(losses) {
		idx = len(losses) - 1
	}
	unitCost := 1.0
	if cost.StockoutCost > 0 && cost.TotalCost > 0 {
		unitCost = cost.StockoutCost / sumFloats(losses)
	}
	varValue := losses[idx] * unitCost

	tail := losses[idx:]
	cvar := (sumFloats(tail) / float64(len(tail))) * unitCost
	return varValue, cvar
}

func sumFloats(vs []float64) float64 {
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total
}

package analytics

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

func buildCost(batches []entities.Batch, sim simulation.Result, params entities.PlanningParameters) entities.CostBreakdown {
	accountable := accountableBatches(batches)

	setup := float64(len(accountable)) * params.SetupCost
	holding := holdingCost(sim.StockEvolution, params.HoldingCostRate)
	stockout := sim.StockoutSeverity * params.StockoutCostMultiplier * setupUnit(params)

	total := setup + holding + stockout

	cost := entities.CostBreakdown{
		SetupCost:    setup,
		HoldingCost:  holding,
		StockoutCost: stockout,
		TotalCost:    total,
	}
	if total > 0 {
		cost.SetupCostPercent = setup / total * 100
		cost.HoldingCostPercent = holding / total * 100
		cost.StockoutCostPercent = stockout / total * 100
	}
	return cost
}

// setupUnit approximates a per-unit cost basis for stockout cost when the
// caller hasn't supplied one explicitly: a fraction of setup cost, since
// that's the only cost figure the planner is guaranteed to have.
func setupUnit(params entities.PlanningParameters) float64 {
	if params.SetupCost > 0 {
		return params.SetupCost / 100
	}
	return 1
}

func holdingCost(evolution entities.StockEvolution, rate float64) float64 {
	total := 0.0
	dailyRate := rate / 365.0
	for _, d := range evolution {
		if d.Stock > 0 {
			total += d.Stock * dailyRate
		}
	}
	return total
}

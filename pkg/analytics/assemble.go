package analytics

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

// Assemble implements C8: given the finished batch list, the demand it was
// built against, the authoritative simulation of that pairing, and the
// already-computed demand profile (C2/C3), it produces the full §4.8
// analytics bundle.
func Assemble(batches []entities.Batch, events []entities.DemandEvent, sim simulation.Result, profile entities.DemandMetrics, initialStock float64, params entities.PlanningParameters, strategy entities.Strategy) entities.AnalyticsBundle {
	periodDays := params.Period().Days()

	summary := buildSummary(batches, events, sim, initialStock, strategy)
	perf := buildPerformance(batches, summary, sim, periodDays)
	cost := buildCost(batches, sim, params)
	risk := buildRisk(sim, profile, periodDays, cost)
	whatIf := buildWhatIf(events, params, profile, initialStock, cost)
	recommendations := buildRecommendations(summary, perf, cost, risk)

	return entities.AnalyticsBundle{
		Summary:         summary,
		Performance:     perf,
		Cost:            cost,
		Demand:          profile,
		Risk:            risk,
		WhatIf:          whatIf,
		Recommendations: recommendations,
		StockEvolution:  sim.StockEvolution,
		CriticalPoints:  sim.CriticalPoints,
	}
}

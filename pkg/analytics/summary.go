// Package analytics implements C8: it turns a finished plan (batches plus
// the day-by-day simulation that validates them) into the descriptive,
// performance, cost, risk and what-if blocks of §4.8.
package analytics

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

func buildSummary(batches []entities.Batch, events []entities.DemandEvent, sim simulation.Result, initialStock float64, strategy entities.Strategy) entities.Summary {
	accountable := accountableBatches(batches)

	totalProduced := 0.0
	for _, b := range accountable {
		totalProduced += b.Quantity
	}

	totalDemand := 0.0
	for _, e := range events {
		totalDemand += e.Quantity
	}

	demandsMet := countDemandsMet(events, sim)

	s := entities.Summary{
		InitialStock:     initialStock,
		FinalStock:       sim.FinalStock,
		MinimumStock:     sim.MinimumStock,
		MinimumStockDate: sim.MinimumStockDate,
		TotalBatches:     len(accountable),
		TotalProduced:    totalProduced,
		TotalDemand:      totalDemand,
		DemandEventsCount: len(events),
		DemandsMetCount:   demandsMet,
		Strategy:          strategy,
	}
	if totalDemand > 0 {
		s.ProductionCoverageRate = totalProduced / totalDemand
	}
	if len(events) > 0 {
		s.DemandFulfillmentRate = float64(demandsMet) / float64(len(events)) * 100
	}
	return s
}

// countDemandsMet counts demand events served without the day going
// negative, using the authoritative simulation's stock evolution.
func countDemandsMet(events []entities.DemandEvent, sim simulation.Result) int {
	stockByDate := make(map[entities.Date]float64, len(sim.StockEvolution))
	for _, d := range sim.StockEvolution {
		stockByDate[d.Date] = d.Stock
	}
	met := 0
	for _, e := range events {
		if stockByDate[e.Date] >= 0 {
			met++
		}
	}
	return met
}

func accountableBatches(batches []entities.Batch) []entities.Batch {
	out := make([]entities.Batch, 0, len(batches))
	for _, b := range batches {
		if b.IsAccountable() {
			out = append(out, b)
		}
	}
	return out
}

package analytics

import (
	"math"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

func buildPerformance(batches []entities.Batch, summary entities.Summary, sim simulation.Result, periodDays int) entities.Performance {
	accountable := accountableBatches(batches)

	perf := entities.Performance{
		RealizedServiceLevel: summary.DemandFulfillmentRate,
	}

	avgStock := averageStock(sim.StockEvolution)
	if avgStock > 0 {
		perf.InventoryTurnover = summary.TotalDemand / avgStock
	}
	if perf.InventoryTurnover > 0 {
		perf.AverageDaysOfInventory = float64(periodDays) / perf.InventoryTurnover
	}
	if periodDays > 0 {
		perf.SetupFrequencyPerYear = float64(len(accountable)) / float64(periodDays) * 365
	}
	if len(accountable) > 0 {
		perf.AverageBatchSize = summary.TotalProduced / float64(len(accountable))
	}
	perf.StockCV = stockCV(sim.StockEvolution)
	perf.PerfectOrderRate = perfectOrderRate(accountable)

	return perf
}

func averageStock(evolution entities.StockEvolution) float64 {
	if len(evolution) == 0 {
		return 0
	}
	total := 0.0
	for _, d := range evolution {
		total += d.Stock
	}
	return total / float64(len(evolution))
}

func stockCV(evolution entities.StockEvolution) float64 {
	n := float64(len(evolution))
	if n == 0 {
		return 0
	}
	mean := averageStock(evolution)
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, d := range evolution {
		delta := d.Stock - mean
		variance += delta * delta
	}
	variance /= n
	return math.Sqrt(variance) / math.Abs(mean)
}

func perfectOrderRate(batches []entities.Batch) float64 {
	if len(batches) == 0 {
		return 1
	}
	perfect := 0
	for _, b := range batches {
		if !b.Analytics.IsCritical {
			perfect++
		}
	}
	return float64(perfect) / float64(len(batches))
}

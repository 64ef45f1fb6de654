package planning

import (
	"math"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

// distributionName enumerates the four candidate quantity distributions of
// Phase E.
type distributionName int

const (
	distUniform distributionName = iota
	distProgressive
	distFrontLoaded
	distSmartBalanced
)

// redistribute implements Phase E: when leadtimeDays is long (>=45) and
// batches has more than one entry, it tries all four candidate
// distributions of the combined quantity, simulates each against the full
// demand set, and returns the batches (same order/arrival dates, new
// quantities) of whichever minimizes stockout severity — ties broken by
// lowest coefficient of variation across batch sizes.
func redistribute(batches []entities.Batch, demands []entities.DemandEvent, initialStock float64, period entities.Period, dailyMean float64, leadtimeDays int) []entities.Batch {
	if leadtimeDays < 45 || len(batches) < 2 {
		return batches
	}

	total := 0.0
	for _, b := range batches {
		total += b.Quantity
	}
	if total <= 0 {
		return batches
	}

	candidates := []distributionName{distUniform, distProgressive, distFrontLoaded, distSmartBalanced}

	var best []entities.Batch
	bestSeverity := math.MaxFloat64
	bestCV := math.MaxFloat64

	for _, name := range candidates {
		weights := distributionWeights(name, batches, period)
		qtys := weighted(total, weights)

		trial := make([]entities.Batch, len(batches))
		copy(trial, batches)
		for i := range trial {
			trial[i].Quantity = qtys[i]
		}

		sim := simulation.Simulate(initialStock, trial, demands, period, dailyMean)
		cv := coefficientOfVariation(qtys)

		if sim.StockoutSeverity < bestSeverity || (sim.StockoutSeverity == bestSeverity && cv < bestCV) {
			bestSeverity = sim.StockoutSeverity
			bestCV = cv
			best = trial
		}
	}

	return best
}

func distributionWeights(name distributionName, batches []entities.Batch, period entities.Period) []float64 {
	n := len(batches)
	weights := make([]float64, n)

	switch name {
	case distUniform:
		for i := range weights {
			weights[i] = 1
		}
	case distProgressive:
		for i := range weights {
			weights[i] = float64(n - i)
		}
	case distFrontLoaded:
		for i := range weights {
			weights[i] = 1
		}
		weights[0] = float64(n)
	case distSmartBalanced:
		for i := range weights {
			var gap int
			if i+1 < n {
				gap = batches[i+1].ArrivalDate.Sub(batches[i].ArrivalDate)
			} else {
				gap = period.End.Sub(batches[i].ArrivalDate) + 1
			}
			if gap < 1 {
				gap = 1
			}
			weights[i] = float64(gap)
		}
	}
	return weights
}

func weighted(total float64, weights []float64) []float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	if sum <= 0 {
		for i := range out {
			out[i] = total / float64(len(weights))
		}
		return out
	}
	for i, w := range weights {
		out[i] = total * w / sum
	}
	return out
}

func coefficientOfVariation(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= n
	if mean == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= n
	return math.Sqrt(variance) / mean
}

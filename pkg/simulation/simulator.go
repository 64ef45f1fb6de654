// Package simulation implements C7: the day-by-day stock simulator shared
// by the Batch Planner's intelligent-distribution search (Phase E) and the
// Analytics Assembler.
package simulation

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

// Result is the full output of a single simulation run.
type Result struct {
	StockEvolution entities.StockEvolution
	MinimumStock   float64
	MinimumStockDate entities.Date
	FinalStock     float64
	CriticalPoints []entities.CriticalPoint
	// StockoutSeverity is the sum, over every day, of the magnitude by
	// which stock went negative — used by Phase E to rank candidate
	// distributions.
	StockoutSeverity float64
}

// Simulate walks every day of period, adding arrivals before subtracting
// demand (so a batch arriving on the demand date can satisfy it), per §4.7.
// Only batches with b.IsAccountable() participate — informative batches
// never enter the simulation, while excess-production batches are counted
// like any other (§4.10, §9 Design Notes).
func Simulate(initialStock float64, batches []entities.Batch, demands []entities.DemandEvent, period entities.Period, dailyMean float64) Result {
	arrivalsByDate := make(map[entities.Date]float64)
	for _, b := range batches {
		if !b.IsAccountable() {
			continue
		}
		arrivalsByDate[b.ArrivalDate] += b.Quantity
	}
	demandByDate := make(map[entities.Date]float64, len(demands))
	for _, d := range demands {
		demandByDate[d.Date] += d.Quantity
	}

	days := period.Days()
	res := Result{
		StockEvolution: make(entities.StockEvolution, 0, days),
	}

	stock := initialStock
	haveMin := false

	for d := period.Start; !d.After(period.End); d = d.AddDays(1) {
		stock += arrivalsByDate[d]
		stock -= demandByDate[d]

		res.StockEvolution = append(res.StockEvolution, entities.StockDay{Date: d, Stock: stock})

		if !haveMin || stock < res.MinimumStock {
			res.MinimumStock = stock
			res.MinimumStockDate = d
			haveMin = true
		}
		if stock < 0 {
			res.StockoutSeverity += -stock
		}

		res.CriticalPoints = append(res.CriticalPoints, classifyDay(d, stock, dailyMean, demandByDate, period))
	}

	res.FinalStock = stock
	res.CriticalPoints = filterCritical(res.CriticalPoints)
	return res
}

// classifyDay assigns a severity per §4.7. daysOfCoverage is a simple
// stock/dailyMean estimate; when dailyMean is zero any positive stock is
// treated as infinite coverage.
func classifyDay(d entities.Date, stock, dailyMean float64, demandByDate map[entities.Date]float64, period entities.Period) entities.CriticalPoint {
	coverage := coverageDays(stock, dailyMean)

	severity := entities.SeverityNone
	switch {
	case stock < 0:
		severity = entities.SeverityStockout
	case dailyMean > 0 && stock < dailyMean:
		severity = entities.SeverityCritical
	case dailyMean > 0 && stock < 2*dailyMean && coverage < 5:
		severity = entities.SeverityWarning
	}

	return entities.CriticalPoint{Date: d, Stock: stock, DaysOfCoverage: coverage, Severity: severity}
}

func coverageDays(stock, dailyMean float64) float64 {
	if dailyMean <= 0 {
		if stock >= 0 {
			return 999
		}
		return 0
	}
	cov := stock / dailyMean
	if cov < 0 {
		return 0
	}
	return cov
}

func filterCritical(points []entities.CriticalPoint) []entities.CriticalPoint {
	out := points[:0:0]
	for _, p := range points {
		if p.Severity != entities.SeverityNone {
			out = append(out, p)
		}
	}
	return out
}

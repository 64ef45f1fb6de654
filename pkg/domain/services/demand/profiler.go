package demand

import (
	"math"
	"sort"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

// Profile computes the demand statistics of §4.2 over an already
// normalized event list (C3). Returns a zero-valued DemandMetrics on empty
// input — the profiler never fails.
func Profile(events []entities.DemandEvent, periodDays int) entities.DemandMetrics {
	m := entities.DemandMetrics{}
	n := len(events)
	if n == 0 || periodDays <= 0 {
		return m
	}

	total := 0.0
	for _, e := range events {
		total += e.Quantity
	}
	mean := total / float64(n)

	variance := 0.0
	for _, e := range events {
		d := e.Quantity - mean
		variance += d * d
	}
	variance /= float64(n)
	stdev := math.Sqrt(variance)

	cv := 0.0
	if mean > 0 {
		cv = stdev / mean
	}

	m.TotalDemand = total
	m.Mean = mean
	m.Stdev = stdev
	m.CV = cv
	m.Intervals = intervalStats(events)

	m.ConcentrationIndex = float64(n) / float64(periodDays)
	m.ConcentrationLevel = concentrationLevel(m.ConcentrationIndex)

	m.PeakThreshold = peakThreshold(mean, stdev)
	for _, e := range events {
		if e.Quantity > m.PeakThreshold {
			m.PeakDates = append(m.PeakDates, e.Date)
		}
	}

	m.Predictability = predictability(cv)
	m.XYZ = xyzClass(cv)
	m.EventClasses = classifyABC(events, total)

	return m
}

// MeanDailyDemand averages total demand over the calendar length of the
// planning period (not over the number of demand events), the quantity
// used as "mean_daily_demand" throughout §4.3–§4.5.
func MeanDailyDemand(totalDemand float64, periodDays int) float64 {
	if periodDays <= 0 {
		return 0
	}
	return totalDemand / float64(periodDays)
}

func intervalStats(events []entities.DemandEvent) entities.IntervalStats {
	if len(events) < 2 {
		return entities.IntervalStats{}
	}
	gaps := make([]float64, 0, len(events)-1)
	for i := 1; i < len(events); i++ {
		gaps = append(gaps, float64(events[i].Date.Sub(events[i-1].Date)))
	}
	min, max, sum := gaps[0], gaps[0], 0.0
	for _, g := range gaps {
		if g < min {
			min = g
		}
		if g > max {
			max = g
		}
		sum += g
	}
	mean := sum / float64(len(gaps))
	variance := 0.0
	for _, g := range gaps {
		d := g - mean
		variance += d * d
	}
	variance /= float64(len(gaps))
	return entities.IntervalStats{MinDays: min, MaxDays: max, MeanDays: mean, VarianceDays: variance}
}

func concentrationLevel(index float64) entities.ConcentrationLevel {
	switch {
	case index < 0.1:
		return entities.ConcentrationLow
	case index <= 0.3:
		return entities.ConcentrationMedium
	default:
		return entities.ConcentrationHigh
	}
}

func peakThreshold(mean, stdev float64) float64 {
	if stdev == 0 {
		return 1.5 * mean
	}
	return mean + stdev
}

func predictability(cv float64) entities.Predictability {
	switch {
	case cv <= 0.3:
		return entities.PredictabilityHigh
	case cv <= 0.6:
		return entities.PredictabilityMedium
	default:
		return entities.PredictabilityLow
	}
}

func xyzClass(cv float64) entities.XYZClass {
	switch {
	case cv <= 0.2:
		return entities.XYZClassX
	case cv <= 0.5:
		return entities.XYZClassY
	default:
		return entities.XYZClassZ
	}
}

// classifyABC ranks events by descending quantity and assigns each the
// class (A/B/C) of the 0.7/0.9 cumulative-share band its share starts in
// (the cumulative share of the larger events ranked before it), so the
// largest event is always A — the single-SKU reduction of ABC
// classification resolved in §9.
func classifyABC(events []entities.DemandEvent, total float64) []entities.EventClass {
	ranked := make([]entities.DemandEvent, len(events))
	copy(ranked, events)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	classByDate := make(map[entities.Date]entities.ABCClass, len(ranked))
	cumulative := 0.0
	for _, e := range ranked {
		share := 1.0
		if total > 0 {
			share = cumulative / total
		}
		cumulative += e.Quantity
		class := entities.ABCClassC
		switch {
		case share < 0.7:
			class = entities.ABCClassA
		case share < 0.9:
			class = entities.ABCClassB
		}
		classByDate[e.Date] = class
	}

	out := make([]entities.EventClass, 0, len(events))
	for _, e := range events {
		out = append(out, entities.EventClass{Date: e.Date, Quantity: e.Quantity, ABC: classByDate[e.Date]})
	}
	return out
}

// Package demand implements C2 (Demand Normalizer) and C3 (Demand
// Profiler).
package demand

import (
	"sort"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	plannererrors "github.com/sporadicmrp/planner/pkg/errors"
)

// Normalize validates and filters a raw date->quantity map against the
// planning period, returning an ordered, deduplicated list of demand
// events (C2). Out-of-period and non-positive entries are silently
// dropped; multiple entries for the same date are summed. allowEmpty lets
// the caller (the façade, per §4.1) permit a zero-event result when an
// informative/excess force flag was set.
func Normalize(raw map[string]float64, period entities.Period, allowEmpty bool) ([]entities.DemandEvent, error) {
	byDate := make(map[entities.Date]float64, len(raw))
	for dateStr, qty := range raw {
		d, err := entities.ParseDate(dateStr)
		if err != nil {
			return nil, plannererrors.NewInvalidInput("invalid demand date " + dateStr)
		}
		if qty <= 0 {
			continue
		}
		if !period.Contains(d) {
			continue
		}
		byDate[d] += qty
	}

	events := NormalizeEvents(toEvents(byDate), period)

	if len(events) == 0 && !allowEmpty {
		return nil, plannererrors.NewInvalidInput("no demand events fall within the planning period")
	}
	return events, nil
}

// NormalizeEvents applies the same filter/coalesce/order policy as
// Normalize to an already-parsed event list, for callers that start from
// entities.DemandEvent rather than raw strings (Normalize itself finishes
// through it).
func NormalizeEvents(raw []entities.DemandEvent, period entities.Period) []entities.DemandEvent {
	byDate := make(map[entities.Date]float64, len(raw))
	for _, e := range raw {
		if e.Quantity <= 0 {
			continue
		}
		if !period.Contains(e.Date) {
			continue
		}
		byDate[e.Date] += e.Quantity
	}
	return toEvents(byDate)
}

func toEvents(byDate map[entities.Date]float64) []entities.DemandEvent {
	events := make([]entities.DemandEvent, 0, len(byDate))
	for d, q := range byDate {
		events = append(events, entities.DemandEvent{Date: d, Quantity: q})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

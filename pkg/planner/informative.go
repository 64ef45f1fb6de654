package planner

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

// generateInformativeOrExcess implements C10: the fallback the Batch
// Planner (C6) defers to whenever it would otherwise emit zero batches —
// an empty demand set force-flagged by the caller. Exactly one of the two
// force flags may be honored per call; force_excess_production takes
// priority when both are set, since it is the stronger of the two
// ("produce something real") over the weaker ("just report a
// placeholder").
//
// Per §4.10 both modes report quantity = total_demand (or the symbolic 50
// units when demand is empty). Informative batches are otherwise excluded
// from every analytics total (§9 Design Notes: Batch.IsAccountable());
// excess batches carry the same quantity but participate normally.
func generateInformativeOrExcess(events []entities.DemandEvent, params entities.PlanningParameters) (entities.Batch, bool) {
	orderDate := params.StartCutoff
	latestOrder := params.EndCutoff.AddDays(-params.LeadtimeDays)
	orderDate = entities.ClampDate(orderDate, params.StartCutoff, latestOrder)
	arrivalDate := midPeriodArrival(orderDate, params)

	qty := totalDemandOrSymbolic(events)

	switch {
	case params.ForceExcessProduction:
		return entities.Batch{
			OrderDate:   orderDate,
			ArrivalDate: arrivalDate,
			Quantity:    qty,
			Analytics: entities.BatchAnalytics{
				StockBeforeArrival: params.InitialStock,
				StockAfterArrival:  params.InitialStock + qty,
				UrgencyLevel:       entities.UrgencyPlanned,
				ExcessProduction:   true,
			},
		}, true

	case params.ForceInformativeBatches:
		return entities.Batch{
			OrderDate:   orderDate,
			ArrivalDate: arrivalDate,
			Quantity:    qty,
			Analytics: entities.BatchAnalytics{
				StockBeforeArrival: params.InitialStock,
				StockAfterArrival:  params.InitialStock,
				UrgencyLevel:       entities.UrgencyPlanned,
				InformativeBatch:   true,
			},
		}, true

	default:
		return entities.Batch{}, false
	}
}

// totalDemandOrSymbolic sums the raw demand quantity, falling back to the
// symbolic 50 units §4.10 names for a genuinely empty demand set.
func totalDemandOrSymbolic(events []entities.DemandEvent) float64 {
	total := 0.0
	for _, e := range events {
		total += e.Quantity
	}
	if total <= 0 {
		return 50
	}
	return total
}

// midPeriodArrival places the placeholder batch near the middle of the
// planning period, clamped into [order_date + leadtime_days, end_cutoff]
// (§4.10).
func midPeriodArrival(orderDate entities.Date, params entities.PlanningParameters) entities.Date {
	span := params.PeriodEnd.Sub(params.PeriodStart)
	mid := params.PeriodStart.AddDays(span / 2)
	earliest := orderDate.AddDays(params.LeadtimeDays)
	return entities.ClampDate(mid, earliest, params.EndCutoff)
}

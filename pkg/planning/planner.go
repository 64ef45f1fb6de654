// Package planning implements C6, the batch planner: the core of the core.
// It walks normalized demand events in date order, grouping them into
// coverage windows (Phase A), picking order dates against cutoffs
// (Phase B), sizing each batch (Phase C), consolidating adjacent
// candidates (Phase D), and — for long lead times — searching over
// quantity distributions (Phase E) before handing back a list of batches
// that satisfy the Phase F post-conditions.
package planning

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/sizing"
)

// Inputs bundles everything the planner needs beyond the normalized demand
// list itself.
type Inputs struct {
	InitialStock    float64
	Params          entities.PlanningParameters
	Sizing          sizing.Sizing
	MeanDailyDemand float64
}

// Plan implements §4.5 end to end and returns the final batch list. It
// never returns an error for a well-formed, non-empty event list; Phase F
// clamping absorbs infeasibilities into the `is_critical` flag rather than
// failing the call (spec §7: CapacityExceeded is not an error response).
func Plan(events []entities.DemandEvent, in Inputs) []entities.Batch {
	if len(events) == 0 {
		return nil
	}

	unserved := unservedEvents(events, in.InitialStock)
	if len(unserved) == 0 {
		return nil
	}

	groups := group(unserved, in.Params.LeadtimeDays, in.Params.MaxGapDays)
	maxSingleDemand := maxQuantity(events)
	window := coverageWindowDays(in.Params.LeadtimeDays, in.Params.MaxGapDays)
	latestOrder := in.Params.EndCutoff.AddDays(-in.Params.LeadtimeDays)

	batches := make([]entities.Batch, 0, len(groups))
	runningStock := in.InitialStock
	consumedUpTo := in.Params.PeriodStart.AddDays(-1)

	for gi, grp := range groups {
		arrivalTarget := grp[0].Date
		// Zero lead time is the JIT case: the batch is ordered and arrives on
		// the demand date itself, so no safety days are applied.
		safetyDays := in.Params.SafetyDays
		if in.Params.LeadtimeDays == 0 {
			safetyDays = 0
		}
		orderDateRaw := arrivalTarget.AddDays(-(in.Params.LeadtimeDays + safetyDays))
		orderDate := entities.ClampDate(orderDateRaw, in.Params.StartCutoff, latestOrder)
		arrivalDate := orderDate.AddDays(in.Params.LeadtimeDays)

		critical := arrivalDate.After(arrivalTarget)
		arrivalDelay := 0
		if critical {
			arrivalDelay = arrivalDate.Sub(arrivalTarget)
		}

		runningStock, consumedUpTo = consumeUntil(runningStock, consumedUpTo, events, arrivalDate)
		stockBefore := runningStock

		groupDemand := sumQuantity(grp)
		lastDate := grp[len(grp)-1].Date

		gap := gapToNext(groups, gi, lastDate, in.Params.PeriodEnd)
		future := eventsAfter(events, lastDate)
		futureWeighted := forwardWeightedDemand(arrivalDate, future, window)

		qr := computeQuantity(quantityInputs{
			groupDemand:     groupDemand,
			stockBefore:     stockBefore,
			maxSingleDemand: maxSingleDemand,
			meanDailyDemand: in.MeanDailyDemand,
			leadtimeDays:    in.Params.LeadtimeDays,
			gapToNextDemand: gap,
			futureWeighted:  futureWeighted,
			params:          in.Params,
			sizing:          in.Sizing,
			orderDate:       orderDate,
			latestOrder:     latestOrder,
		})

		runningStock += qr.Quantity
		runningStock = consumeGroup(runningStock, grp)
		if lastDate.After(consumedUpTo) {
			consumedUpTo = lastDate
		}
		stockAfter := runningStock

		critical = critical || qr.CapacityExceeded
		batches = append(batches, buildBatch(orderDate, arrivalDate, qr, stockBefore, stockAfter, critical, arrivalDelay, grp, in, gap, window))
	}

	if in.Params.EnableConsolidation {
		batches = consolidateAdjacent(batches, in.Params, in.Sizing.MinBatch)
	}

	batches = redistribute(batches, events, in.InitialStock, in.Params.Period(), in.MeanDailyDemand, in.Params.LeadtimeDays)

	if in.Params.ExactQuantityMatch {
		target := math.Max(0, sumDemand(events)-in.InitialStock)
		batches = normalizeExact(batches, target)
	}

	return batches
}

func buildBatch(orderDate, arrivalDate entities.Date, qr quantityResult, stockBefore, stockAfter float64, critical bool, arrivalDelay int, grp []entities.DemandEvent, in Inputs, gap int, window int) entities.Batch {
	covered := make([]entities.DemandCovered, 0, len(grp))
	for _, e := range grp {
		covered = append(covered, entities.DemandCovered{Date: e.Date, Quantity: e.Quantity})
	}

	urgency := urgencyLevel(in.Params.LeadtimeDays, critical, gap)
	efficiency := 1.0
	target := qr.Shortfall + qr.Safety + qr.MinStock
	if target > 0 {
		efficiency = qr.Quantity / target
	}

	// A Phase A group of more than one event already avoided len(grp)-1
	// separate setup orders; absent a Phase D decision record (that only
	// exists for an explicit merge), the setup cost itself is the net
	// savings proxy.
	consolidatedGroup := len(grp) > 1
	quality := entities.ConsolidationQualityNone
	if consolidatedGroup {
		quality = consolidationQuality(in.Params.SetupCost, in.Params.SetupCost)
	}

	analytics := entities.BatchAnalytics{
		StockBeforeArrival:          stockBefore,
		StockAfterArrival:           stockAfter,
		ConsumptionSinceLastArrival: sumQuantity(grp),
		CoverageDays:                coverageDaysEstimate(qr.Quantity, in.MeanDailyDemand),
		ActualLeadTime:              arrivalDate.Sub(orderDate),
		UrgencyLevel:                urgency,
		IsCritical:                  critical,
		ArrivalDelayDays:            arrivalDelay,
		DemandsCovered:              covered,
		ShortfallCovered:            qr.Shortfall,
		EfficiencyRatio:             efficiency,
		SafetyMarginDays:            safetyMarginDays(qr.Safety, in.MeanDailyDemand),
		ConsolidatedGroup:           consolidatedGroup,
		GroupSize:                   len(grp),
		ConsolidationQuality:        quality,
		LongLeadtimeOptimization:    qr.LongLeadtimeOptimization,
		FutureDemandConsidered:      qr.FutureDemandConsidered,
		CoverageWindowDays:          window,
		GapToNextDemandDays:         gap,
		CapacityExceeded:            qr.CapacityExceeded,
		UnmetDemand:                 qr.UnmetDemand,
	}

	return entities.Batch{
		OrderDate:   orderDate,
		ArrivalDate: arrivalDate,
		Quantity:    qr.Quantity,
		Analytics:   analytics,
	}
}

func urgencyLevel(leadtimeDays int, critical bool, gap int) entities.UrgencyLevel {
	switch {
	case critical:
		return entities.UrgencyCritical
	case leadtimeDays == 0:
		return entities.UrgencyJIT
	case gap <= 7:
		return entities.UrgencyHigh
	case gap <= 30:
		return entities.UrgencyNormal
	default:
		return entities.UrgencyPlanned
	}
}

func coverageDaysEstimate(qty, meanDaily float64) float64 {
	if meanDaily <= 0 {
		return 0
	}
	return qty / meanDaily
}

func safetyMarginDays(safety, meanDaily float64) float64 {
	if meanDaily <= 0 {
		return 0
	}
	return safety / meanDaily
}

// consolidateAdjacent implements Phase D: repeatedly merge adjacent batch
// pairs that satisfy any of the six criteria, replacing them in place.
func consolidateAdjacent(batches []entities.Batch, params entities.PlanningParameters, minBatch float64) []entities.Batch {
	merged := true
	for merged {
		merged = false
		for i := 0; i+1 < len(batches); i++ {
			a, b := batches[i], batches[i+1]
			gap := b.ArrivalDate.Sub(a.ArrivalDate)
			overlap := gap < params.LeadtimeDays

			ok, decision := evaluateConsolidation(
				candidate{ArrivalDate: a.ArrivalDate, Quantity: a.Quantity, GroupSize: a.Analytics.GroupSize},
				candidate{ArrivalDate: b.ArrivalDate, Quantity: b.Quantity, GroupSize: b.Analytics.GroupSize},
				consolidationInputs{gapDays: gap, leadtimeOverlap: overlap, params: params, minBatch: minBatch},
			)
			if !ok {
				continue
			}

			combined := mergeBatches(a, b, decision, params.SetupCost)
			batches = append(batches[:i], append([]entities.Batch{combined}, batches[i+2:]...)...)
			merged = true
			break
		}
	}
	return batches
}

func mergeBatches(a, b entities.Batch, decision entities.ConsolidationDecision, setupCost float64) entities.Batch {
	out := a
	out.Quantity = a.Quantity + b.Quantity
	out.Analytics.DemandsCovered = append(append([]entities.DemandCovered{}, a.Analytics.DemandsCovered...), b.Analytics.DemandsCovered...)
	out.Analytics.ConsumptionSinceLastArrival = a.Analytics.ConsumptionSinceLastArrival + b.Analytics.ConsumptionSinceLastArrival
	out.Analytics.GroupSize = a.Analytics.GroupSize + b.Analytics.GroupSize
	out.Analytics.ConsolidatedGroup = true
	out.Analytics.Consolidation = &decision
	out.Analytics.NetSavings = decision.NetSavings
	out.Analytics.HoldingCostIncrease = decision.HoldingCostIncrease
	out.Analytics.OverlapPrevented = decision.OverlapPrevented
	out.Analytics.ConsolidationQuality = consolidationQuality(decision.NetSavings, setupCost)
	out.Analytics.ShortfallCovered = a.Analytics.ShortfallCovered + b.Analytics.ShortfallCovered
	return out
}

// normalizeExact rescales batch quantities so their sum equals target
// exactly (§4.5 Phase C, exact_quantity_match), distributing rounding
// residual onto the last batch. The scaling itself runs in decimal to
// avoid compounding float64 error across many batches.
func normalizeExact(batches []entities.Batch, target float64) []entities.Batch {
	if len(batches) == 0 {
		return batches
	}
	sum := 0.0
	for _, b := range batches {
		sum += b.Quantity
	}
	if sum <= 0 {
		return batches
	}

	dTarget := decimal.NewFromFloat(target)
	dSum := decimal.NewFromFloat(sum)

	out := make([]entities.Batch, len(batches))
	allocated := decimal.Zero
	for i, b := range batches {
		out[i] = b
		if i == len(batches)-1 {
			out[i].Quantity, _ = dTarget.Sub(allocated).Float64()
			continue
		}
		share := decimal.NewFromFloat(b.Quantity).Div(dSum).Mul(dTarget)
		out[i].Quantity, _ = share.Float64()
		allocated = allocated.Add(share)
	}
	return out
}

func maxQuantity(events []entities.DemandEvent) float64 {
	max := 0.0
	for _, e := range events {
		if e.Quantity > max {
			max = e.Quantity
		}
	}
	return max
}

func sumQuantity(events []entities.DemandEvent) float64 {
	total := 0.0
	for _, e := range events {
		total += e.Quantity
	}
	return total
}

func sumDemand(events []entities.DemandEvent) float64 {
	return sumQuantity(events)
}

func gapToNext(groups [][]entities.DemandEvent, gi int, lastDate entities.Date, periodEnd entities.Date) int {
	if gi+1 < len(groups) {
		return groups[gi+1][0].Date.Sub(lastDate)
	}
	g := periodEnd.Sub(lastDate)
	if g < 0 {
		g = 0
	}
	return g
}

// unservedEvents implements Phase A's "earliest unserved demand" starting
// point: once cumulative demand exceeds initial stock, that event and
// every later one needs replenishment; everything up to that point is
// already covered and never enters grouping. Events before the crossing
// point are still subtracted from running stock elsewhere (consumeUntil
// walks the full event list), so their consumption is not lost — they
// simply never anchor a batch of their own.
func unservedEvents(events []entities.DemandEvent, initialStock float64) []entities.DemandEvent {
	cumulative := 0.0
	for i, e := range events {
		cumulative += e.Quantity
		if cumulative > initialStock {
			return events[i:]
		}
	}
	return nil
}

func eventsAfter(events []entities.DemandEvent, date entities.Date) []entities.DemandEvent {
	var out []entities.DemandEvent
	for _, e := range events {
		if e.Date.After(date) {
			out = append(out, e)
		}
	}
	return out
}

// consumeUntil subtracts demand for every event strictly after consumedUpTo
// and strictly before upTo, returning the updated stock and high-water
// mark. It models the days between two processed batch arrivals.
func consumeUntil(stock float64, consumedUpTo entities.Date, events []entities.DemandEvent, upTo entities.Date) (float64, entities.Date) {
	for _, e := range events {
		if e.Date.After(consumedUpTo) && e.Date.Before(upTo) {
			stock -= e.Quantity
			consumedUpTo = e.Date
		}
	}
	return stock, consumedUpTo
}

func consumeGroup(stock float64, grp []entities.DemandEvent) float64 {
	for _, e := range grp {
		stock -= e.Quantity
	}
	return stock
}

package planning

import (
	"math"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/sizing"
)

// quantityInputs bundles the Phase C (§4.5) computation's free variables.
type quantityInputs struct {
	groupDemand     float64
	stockBefore     float64
	maxSingleDemand float64
	meanDailyDemand float64
	leadtimeDays    int
	gapToNextDemand int // days from the group's last demand to the next group's first; to period_end if none
	futureWeighted  float64
	params          entities.PlanningParameters
	sizing          sizing.Sizing
	orderDate       entities.Date
	latestOrder     entities.Date // end_cutoff - leadtime_days; no room for a follow-up order past this
}

// quantityResult is the Phase C output, including the pieces analytics
// needs downstream.
type quantityResult struct {
	Quantity                 float64
	Shortfall                float64
	Safety                   float64
	MinStock                 float64
	LongLeadtimeOptimization bool
	FutureDemandConsidered   float64
	CapacityExceeded         bool
	UnmetDemand              float64
}

// computeQuantity implements §4.5 Phase C exactly: shortfall + safety +
// minimum-stock floor, extended with the long-lead-time critical buffer,
// lead-time safety and forward-looking demand when applicable, then
// clamped to [min_batch, max_batch].
func computeQuantity(in quantityInputs) quantityResult {
	shortfall := math.Max(0, in.groupDemand-in.stockBefore)

	safety := 0.0
	minStock := 0.0
	if !in.params.IgnoreSafetyStock {
		safety = shortfall * in.params.SafetyMarginPercent / 100
		minStock = in.params.MinimumStockPercent / 100 * in.maxSingleDemand
	}

	base := shortfall + safety + minStock

	longExt := false
	futureConsidered := 0.0
	if in.leadtimeDays >= 45 && in.gapToNextDemand > in.leadtimeDays {
		longExt = true
		criticalBuffer := 0.5 * in.groupDemand
		leadTimeSafety := in.meanDailyDemand * math.Min(0.3*float64(in.leadtimeDays), 45)
		futureConsidered = in.futureWeighted
		base += criticalBuffer + leadTimeSafety + futureConsidered
	}

	qty := base
	if qty < in.sizing.MinBatch {
		qty = in.sizing.MinBatch
	}

	// CapacityExceeded (spec §7): the requested quantity collides with
	// max_batch and there is no room left to place a follow-up order
	// before the cutoff window closes. Split across a second order is the
	// normal remedy; when the clamp at latestOrder leaves no room for
	// that, the shortfall becomes unmet demand instead of silently
	// vanishing into the clamp.
	exceeded := false
	unmet := 0.0
	if qty > in.sizing.MaxBatch {
		if !in.orderDate.Before(in.latestOrder) {
			exceeded = true
			unmet = qty - in.sizing.MaxBatch
		}
		qty = in.sizing.MaxBatch
	}

	return quantityResult{
		Quantity:                 qty,
		Shortfall:                shortfall,
		Safety:                   safety,
		MinStock:                 minStock,
		LongLeadtimeOptimization: longExt,
		FutureDemandConsidered:   futureConsidered,
		CapacityExceeded:         exceeded,
		UnmetDemand:              unmet,
	}
}

// forwardWeightedDemand sums demand events within windowDays of arrival,
// weighting linearly from 1.0 at arrival down to 0.2 at the window edge —
// the D_future term of Phase C.
func forwardWeightedDemand(arrival entities.Date, future []entities.DemandEvent, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	total := 0.0
	for _, e := range future {
		delta := e.Date.Sub(arrival)
		if delta < 0 || delta > windowDays {
			continue
		}
		t := float64(delta) / float64(windowDays)
		weight := 1.0 - 0.8*t
		total += e.Quantity * weight
	}
	return total
}

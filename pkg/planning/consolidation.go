package planning

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

// candidate is a not-yet-final batch considered for consolidation against
// its neighbor (Phase D).
type candidate struct {
	ArrivalDate entities.Date
	Quantity    float64
	GroupSize   int
}

// consolidationInputs bundles the free variables Phase D's six criteria
// need, beyond the two candidates themselves.
type consolidationInputs struct {
	gapDays            int
	leadtimeOverlap    bool
	params             entities.PlanningParameters
	minBatch           float64
}

// evaluateConsolidation implements §4.5 Phase D: consolidate two adjacent
// candidates when any of the six named criteria holds. Returns the
// enum-discriminated decision record called for by §9 Design Notes.
func evaluateConsolidation(a, b candidate, in consolidationInputs) (bool, entities.ConsolidationDecision) {
	p := in.params

	operationalBenefits := 0.0
	if in.leadtimeOverlap {
		operationalBenefits += 0.5 * p.SetupCost
		if p.OverlapPreventionPriority {
			operationalBenefits += p.MinConsolidationBenefit
		}
	}
	if in.gapDays <= 14 {
		operationalBenefits += 0.2 * p.SetupCost
	}
	combinedQty := a.Quantity + b.Quantity
	if combinedQty >= 1.5*in.minBatch {
		operationalBenefits += 0.1 * p.SetupCost
	}
	operationalBenefits *= weightOrOne(p.OperationalEfficiencyWeight)

	setupSavings := p.SetupCost
	holdingCostIncrease := b.Quantity * (p.HoldingCostRate / 365.0) * float64(in.gapDays)
	if holdingCostIncrease < 0 {
		holdingCostIncrease = 0
	}

	netBenefit := setupSavings + operationalBenefits - holdingCostIncrease
	totalBenefits := setupSavings + operationalBenefits

	small := in.minBatch > 0 && a.Quantity < 1.5*in.minBatch && b.Quantity < 1.5*in.minBatch

	var reason entities.ConsolidationReason
	switch {
	case netBenefit > 0:
		reason = entities.ConsolidationReasonNetBenefit
	case totalBenefits >= p.MinConsolidationBenefit && p.MinConsolidationBenefit > 0:
		reason = entities.ConsolidationReasonMinBenefitThreshold
	case in.leadtimeOverlap && p.ForceConsolidationWithinLeadtime && holdingCostIncrease < 1.5*p.SetupCost:
		reason = entities.ConsolidationReasonLeadtimeOverlapForced
	case in.gapDays <= 7 && holdingCostIncrease < 1.2*p.SetupCost:
		reason = entities.ConsolidationReasonShortGap
	case in.gapDays <= 14 && small && holdingCostIncrease < 2*p.MinConsolidationBenefit:
		reason = entities.ConsolidationReasonMediumGapSmallBatches
	case p.SetupCost < 100 && in.gapDays <= 21 && holdingCostIncrease < 200:
		reason = entities.ConsolidationReasonLowSetupCost
	default:
		return false, entities.ConsolidationDecision{Reason: entities.ConsolidationReasonNone}
	}

	decision := entities.ConsolidationDecision{
		Reason:              reason,
		NetSavings:          netBenefit,
		HoldingCostIncrease: holdingCostIncrease,
		OverlapPrevented:    in.leadtimeOverlap && p.OverlapPreventionPriority,
	}
	return true, decision
}

func weightOrOne(w float64) float64 {
	if w == 0 {
		return 1
	}
	return w
}

// consolidationQuality rates net savings relative to setup cost.
func consolidationQuality(netSavings, setupCost float64) entities.ConsolidationQuality {
	switch {
	case setupCost <= 0:
		return entities.ConsolidationQualityLow
	case netSavings >= setupCost:
		return entities.ConsolidationQualityHigh
	case netSavings >= 0.25*setupCost:
		return entities.ConsolidationQualityMedium
	default:
		return entities.ConsolidationQualityLow
	}
}

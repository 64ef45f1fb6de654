// Package strategy implements C5: deterministic strategy selection from
// lead time, with a profile-driven override to Hybrid.
package strategy

import "github.com/sporadicmrp/planner/pkg/domain/entities"

// Select picks the replenishment strategy for a lead time / demand profile
// pair (§4.4). Below 45 days, a high-concentration, low-predictability
// profile is escalated to the long/hybrid strategy even though lead time
// alone would not call for it.
func Select(leadtimeDays int, profile entities.DemandMetrics) entities.Strategy {
	base := byLeadtime(leadtimeDays)
	if base == entities.StrategyLongHybrid {
		return base
	}
	if profile.ConcentrationLevel == entities.ConcentrationHigh && profile.Predictability == entities.PredictabilityLow {
		return entities.StrategyLongHybrid
	}
	return base
}

func byLeadtime(leadtimeDays int) entities.Strategy {
	switch {
	case leadtimeDays == 0:
		return entities.StrategyJIT
	case leadtimeDays <= 14:
		return entities.StrategyShort
	case leadtimeDays <= 45:
		return entities.StrategyMedium
	default:
		return entities.StrategyLongHybrid
	}
}

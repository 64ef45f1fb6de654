package analytics

import "github.com/sporadicmrp/planner/pkg/domain/entities"

// buildRecommendations is a small rule engine over the already-computed
// blocks: each rule fires independently, so more than one recommendation
// can apply to a single plan.
func buildRecommendations(summary entities.Summary, perf entities.Performance, cost entities.CostBreakdown, risk entities.Risk) []string {
	var out []string

	if summary.DemandFulfillmentRate < 95 {
		out = append(out, "demand fulfillment rate is below 95%; consider reducing safety_days or lowering max_gap_days")
	}
	if risk.StockoutProbability > 0.05 {
		out = append(out, "stockout probability exceeds 5% of the horizon; raise safety_margin_percent or service_level")
	}
	if cost.HoldingCostPercent > 60 {
		out = append(out, "holding cost dominates total cost; tighten max_batch_size or disable min_stock padding")
	}
	if cost.SetupCostPercent > 60 {
		out = append(out, "setup cost dominates total cost; enable_consolidation may reduce order frequency")
	}
	if perf.PerfectOrderRate < 0.8 {
		out = append(out, "a significant share of batches arrived late against their target demand date; leadtime_days may be understated")
	}
	if risk.DemandUncertaintyLabel == entities.UncertaintyHigh {
		out = append(out, "demand coefficient of variation is high; a statistical strategy with a wider safety margin is advised")
	}

	return out
}

package entities

// PlanningParameters holds every input to a single planning call. A call is
// pure with respect to these fields: nothing is shared across calls.
type PlanningParameters struct {
	InitialStock float64 `json:"initial_stock"`
	LeadtimeDays int     `json:"leadtime_days"`

	PeriodStart Date `json:"period_start"`
	PeriodEnd   Date `json:"period_end"`

	StartCutoff Date `json:"start_cutoff"`
	EndCutoff   Date `json:"end_cutoff"`

	SafetyMarginPercent float64 `json:"safety_margin_percent"`
	SafetyDays          int     `json:"safety_days"`
	MinimumStockPercent float64 `json:"minimum_stock_percent"`
	MaxGapDays          int     `json:"max_gap_days"`

	SetupCost       float64 `json:"setup_cost"`
	HoldingCostRate float64 `json:"holding_cost_rate"`
	ServiceLevel    float64 `json:"service_level"`
	MinBatchSize    float64 `json:"min_batch_size"`
	MaxBatchSize    float64 `json:"max_batch_size"`

	EnableConsolidation   bool `json:"enable_consolidation"`
	EnableEOQOptimization bool `json:"enable_eoq_optimization"`

	ForceConsolidationWithinLeadtime bool    `json:"force_consolidation_within_leadtime"`
	MinConsolidationBenefit          float64 `json:"min_consolidation_benefit"`
	OperationalEfficiencyWeight      float64 `json:"operational_efficiency_weight"`
	OverlapPreventionPriority        bool    `json:"overlap_prevention_priority"`

	ExactQuantityMatch        bool    `json:"exact_quantity_match"`
	IgnoreSafetyStock         bool    `json:"ignore_safety_stock"`
	ForceInformativeBatches  bool    `json:"force_informative_batches"`
	ForceExcessProduction    bool    `json:"force_excess_production"`
	AutoCalculateMaxBatchSize bool    `json:"auto_calculate_max_batch_size"`
	MaxBatchMultiplier        float64 `json:"max_batch_multiplier"`

	StockoutCostMultiplier float64 `json:"stockout_cost_multiplier"`
}

// Period returns the planning horizon as a Period.
func (p PlanningParameters) Period() Period {
	return Period{Start: p.PeriodStart, End: p.PeriodEnd}
}

// CutoffWindow returns the order/arrival cutoff window as a Period.
func (p PlanningParameters) CutoffWindow() Period {
	return Period{Start: p.StartCutoff, End: p.EndCutoff}
}

// WithDefaults returns a copy of p with every zero-valued optional field
// filled with its spec-mandated default (§3).
func (p PlanningParameters) WithDefaults() PlanningParameters {
	out := p
	if out.SafetyMarginPercent == 0 {
		out.SafetyMarginPercent = 8
	}
	if out.SafetyDays == 0 {
		out.SafetyDays = 2
	}
	if out.MaxGapDays == 0 {
		out.MaxGapDays = 999
	}
	if out.MaxBatchMultiplier == 0 {
		out.MaxBatchMultiplier = 2
	}
	if out.StockoutCostMultiplier == 0 {
		out.StockoutCostMultiplier = 2.5
	}
	if out.OperationalEfficiencyWeight == 0 {
		out.OperationalEfficiencyWeight = 1
	}
	if out.ServiceLevel == 0 {
		out.ServiceLevel = 0.95
	}
	if out.MaxBatchSize == 0 {
		out.MaxBatchSize = maxFloat64
	}
	return out
}

// maxFloat64 is used as "no upper bound" for MaxBatchSize when the caller
// leaves it unset and auto-calculation is disabled.
const maxFloat64 = 1.7976931348623157e+308

package entities

// DemandCovered names a single demand date/quantity pair served by a batch,
// part of the BatchAnalytics.DemandsCovered list in §4.6.
type DemandCovered struct {
	Date     Date    `json:"date"`
	Quantity float64 `json:"quantity"`
}

// ConsolidationDecision is the enum-discriminated record the Batch Planner
// (C6, Phase D) attaches to a batch born from merging candidates. §9 Design
// Notes calls for this instead of a stringly-typed criteria map.
type ConsolidationDecision struct {
	Reason            ConsolidationReason `json:"reason"`
	NetSavings        float64             `json:"net_savings"`
	HoldingCostIncrease float64           `json:"holding_cost_increase"`
	OverlapPrevented  bool                `json:"overlap_prevented"`
}

// BatchAnalytics carries the descriptive fields of §4.6 for a single batch.
type BatchAnalytics struct {
	StockBeforeArrival           float64         `json:"stock_before_arrival"`
	StockAfterArrival            float64         `json:"stock_after_arrival"`
	ConsumptionSinceLastArrival  float64         `json:"consumption_since_last_arrival"`
	CoverageDays                 float64         `json:"coverage_days"`
	ActualLeadTime               int             `json:"actual_lead_time"`
	UrgencyLevel                 UrgencyLevel    `json:"urgency_level"`
	IsCritical                   bool            `json:"is_critical"`
	ArrivalDelayDays             int             `json:"arrival_delay_days,omitempty"`
	DemandsCovered                []DemandCovered `json:"demands_covered"`
	ShortfallCovered              float64        `json:"shortfall_covered"`
	EfficiencyRatio                float64       `json:"efficiency_ratio"`
	SafetyMarginDays                float64      `json:"safety_margin_days"`
	ConsolidatedGroup                bool        `json:"consolidated_group"`
	GroupSize                         int        `json:"group_size"`
	ConsolidationQuality     ConsolidationQuality `json:"consolidation_quality"`
	Consolidation            *ConsolidationDecision `json:"consolidation,omitempty"`
	NetSavings                        float64      `json:"net_savings"`
	HoldingCostIncrease                float64     `json:"holding_cost_increase"`
	OverlapPrevented                    bool        `json:"overlap_prevented"`

	LongLeadtimeOptimization bool    `json:"long_leadtime_optimization,omitempty"`
	FutureDemandConsidered   float64 `json:"future_demand_considered,omitempty"`
	CoverageWindowDays       int     `json:"coverage_window_days,omitempty"`
	GapToNextDemandDays      int     `json:"gap_to_next_demand_days,omitempty"`

	InformativeBatch  bool `json:"informative_batch,omitempty"`
	ExcessProduction  bool `json:"excess_production,omitempty"`

	CapacityExceeded bool    `json:"capacity_exceeded,omitempty"`
	UnmetDemand      float64 `json:"unmet_demand,omitempty"`
}

// Batch is a single planned replenishment: order it on OrderDate, it
// arrives on ArrivalDate carrying Quantity units.
type Batch struct {
	OrderDate   Date           `json:"order_date"`
	ArrivalDate Date           `json:"arrival_date"`
	Quantity    float64        `json:"quantity"`
	Analytics   BatchAnalytics `json:"analytics"`
}

// IsAccountable reports whether this batch should be counted in analytics
// totals. Informative batches are a zero-effect placeholder and are
// excluded by construction (§4.10).
func (b Batch) IsAccountable() bool {
	return !b.Analytics.InformativeBatch
}

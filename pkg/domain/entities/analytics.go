package entities

// Summary is the top-level analytics block of §4.8.
type Summary struct {
	InitialStock             float64 `json:"initial_stock"`
	FinalStock                float64 `json:"final_stock"`
	MinimumStock               float64 `json:"minimum_stock"`
	MinimumStockDate              Date `json:"minimum_stock_date"`
	TotalBatches                    int `json:"total_batches"`
	TotalProduced               float64 `json:"total_produced"`
	TotalDemand                 float64 `json:"total_demand"`
	DemandEventsCount               int `json:"demand_events_count"`
	DemandsMetCount                  int `json:"demands_met_count"`
	ProductionCoverageRate      float64 `json:"production_coverage_rate"`
	DemandFulfillmentRate       float64 `json:"demand_fulfillment_rate"`
	Strategy                   Strategy `json:"strategy"`
}

// Performance is the §4.8 performance block.
type Performance struct {
	RealizedServiceLevel float64 `json:"realized_service_level"`
	InventoryTurnover    float64 `json:"inventory_turnover"`
	AverageDaysOfInventory float64 `json:"average_days_of_inventory"`
	SetupFrequencyPerYear  float64 `json:"setup_frequency_per_year"`
	AverageBatchSize       float64 `json:"average_batch_size"`
	StockCV                float64 `json:"stock_cv"`
	PerfectOrderRate       float64 `json:"perfect_order_rate"`
}

// CostBreakdown is the §4.8 cost block.
type CostBreakdown struct {
	SetupCost             float64 `json:"setup_cost"`
	HoldingCost           float64 `json:"holding_cost"`
	StockoutCost          float64 `json:"stockout_cost"`
	TotalCost             float64 `json:"total_cost"`
	SetupCostPercent      float64 `json:"setup_cost_percent"`
	HoldingCostPercent    float64 `json:"holding_cost_percent"`
	StockoutCostPercent   float64 `json:"stockout_cost_percent"`
}

// IntervalStats describes the gaps between consecutive demand dates, §4.2.
type IntervalStats struct {
	MinDays      float64 `json:"min_days"`
	MaxDays      float64 `json:"max_days"`
	MeanDays     float64 `json:"mean_days"`
	VarianceDays float64 `json:"variance_days"`
}

// DemandMetrics is the §4.2/§4.8 demand statistics block.
type DemandMetrics struct {
	TotalDemand         float64            `json:"total_demand"`
	Mean                float64            `json:"mean"`
	Stdev               float64            `json:"stdev"`
	CV                  float64            `json:"cv"`
	Intervals           IntervalStats      `json:"intervals"`
	ConcentrationIndex  float64            `json:"concentration_index"`
	ConcentrationLevel  ConcentrationLevel `json:"concentration_level"`
	PeakThreshold       float64            `json:"peak_threshold"`
	PeakDates           []Date             `json:"peak_dates"`
	Predictability      Predictability     `json:"predictability"`
	XYZ                 XYZClass           `json:"xyz"`
	EventClasses        []EventClass       `json:"event_classes"`
}

// EventClass is the per-event ABC classification resolved in §9 (Open
// Question: single-SKU ABC has no portfolio meaning, so it is reduced to a
// per-event magnitude label).
type EventClass struct {
	Date     Date     `json:"date"`
	Quantity float64  `json:"quantity"`
	ABC      ABCClass `json:"abc"`
}

// Risk is the §4.8 risk block.
type Risk struct {
	StockoutProbability    float64          `json:"stockout_probability"`
	ExpectedStockoutsPerYear float64        `json:"expected_stockouts_per_year"`
	ValueAtRisk            float64          `json:"value_at_risk"`
	ConditionalValueAtRisk float64          `json:"conditional_value_at_risk"`
	DemandUncertaintyCV    float64          `json:"demand_uncertainty_cv"`
	DemandUncertaintyLabel UncertaintyLabel `json:"demand_uncertainty_label"`
}

// WhatIfScenario is one canned scenario of the §4.8 what-if block.
type WhatIfScenario struct {
	Name                string  `json:"name"`
	SafetyStockDelta    float64 `json:"safety_stock_delta"`
	TotalCostDelta      float64 `json:"total_cost_delta"`
}

// AnalyticsBundle is the full response analytics payload of §4.8/§6.
type AnalyticsBundle struct {
	Summary         Summary          `json:"summary"`
	Performance     Performance      `json:"performance"`
	Cost            CostBreakdown    `json:"cost"`
	Demand          DemandMetrics    `json:"demand"`
	Risk            Risk             `json:"risk"`
	WhatIf          []WhatIfScenario `json:"what_if"`
	Recommendations []string         `json:"recommendations"`
	StockEvolution  StockEvolution   `json:"stock_evolution"`
	CriticalPoints  []CriticalPoint  `json:"critical_points"`
}

// PlanResult is the complete output of a planning call (C9 façade),
// matching the response shape of §6.
type PlanResult struct {
	Batches   []Batch         `json:"batches"`
	Analytics AnalyticsBundle `json:"analytics"`
}

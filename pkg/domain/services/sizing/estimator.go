// Package sizing implements C4: EOQ, safety stock, reorder point and
// min/max batch bound estimation.
package sizing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/demand"
)

// Sizing is the bundle of derived batch-size parameters consumed by the
// Batch Planner (C6).
type Sizing struct {
	EOQ          float64
	SafetyStock  float64
	ReorderPoint float64
	MinBatch     float64
	MaxBatch     float64
}

// zTable interpolates the inverse-normal service-level factor from the
// small lookup of §4.3. Points must stay sorted by service level.
var zTable = []struct {
	service float64
	z       float64
}{
	{0.90, 1.28},
	{0.95, 1.65},
	{0.98, 2.05},
	{0.99, 2.33},
}

// zFactor linearly interpolates (and clamps at the table edges) the
// service-level factor for an arbitrary service level.
func zFactor(service float64) float64 {
	if service <= zTable[0].service {
		return zTable[0].z
	}
	last := len(zTable) - 1
	if service >= zTable[last].service {
		return zTable[last].z
	}
	for i := 1; i < len(zTable); i++ {
		if service <= zTable[i].service {
			lo, hi := zTable[i-1], zTable[i]
			span := hi.service - lo.service
			t := (service - lo.service) / span
			return lo.z + t*(hi.z-lo.z)
		}
	}
	return zTable[last].z
}

// Estimate computes the full sizing bundle (§4.3) for a normalized demand
// set and its profile.
func Estimate(events []entities.DemandEvent, params entities.PlanningParameters, profile entities.DemandMetrics, periodDays int) Sizing {
	meanDaily := demand.MeanDailyDemand(profile.TotalDemand, periodDays)

	eoq := estimateEOQ(meanDaily, params)
	safetyStock := estimateSafetyStock(profile.Stdev, params, meanDaily)
	reorderPoint := meanDaily*float64(params.LeadtimeDays) + safetyStock

	maxSingleDemand := 0.0
	for _, e := range events {
		if e.Quantity > maxSingleDemand {
			maxSingleDemand = e.Quantity
		}
	}

	maxBatch := params.MaxBatchSize
	if params.AutoCalculateMaxBatchSize {
		multiplier := params.MaxBatchMultiplier
		if multiplier < 2 {
			multiplier = 2
		}
		maxBatch = math.Max(profile.TotalDemand, maxSingleDemand*multiplier)
	}

	minBatch := params.MinBatchSize
	floor := 1.0
	if params.ExactQuantityMatch {
		floor = 0
	}
	if minBatch < floor {
		minBatch = floor
	}

	return Sizing{
		EOQ:          eoq,
		SafetyStock:  safetyStock,
		ReorderPoint: reorderPoint,
		MinBatch:     minBatch,
		MaxBatch:     maxBatch,
	}
}

// estimateEOQ computes the economic order quantity (advisory only, §4.3)
// using decimal arithmetic for the multiplicative chain to keep the
// setup-cost/holding-cost ratio from drifting under repeated float64
// multiplication, then takes a float64 square root of the result.
func estimateEOQ(meanDailyDemand float64, params entities.PlanningParameters) float64 {
	if meanDailyDemand <= 0 || params.HoldingCostRate <= 0 {
		return 0
	}
	annualDemand := decimal.NewFromFloat(meanDailyDemand).Mul(decimal.NewFromInt(365))
	unitHoldingCost := decimal.NewFromFloat(params.HoldingCostRate).
		Mul(decimal.NewFromFloat(meanDailyDemand)).
		Mul(decimal.NewFromInt(365))
	if unitHoldingCost.IsZero() {
		return 0
	}
	numerator := decimal.NewFromInt(2).Mul(annualDemand).Mul(decimal.NewFromFloat(params.SetupCost))
	ratio, _ := numerator.Div(unitHoldingCost).Float64()
	if ratio <= 0 {
		return 0
	}
	return math.Sqrt(ratio)
}

// estimateSafetyStock computes z(service_level) * stdev * sqrt(leadtime)
// capped at max(30, 0.3*leadtime) days of mean consumption (§4.3).
func estimateSafetyStock(stdev float64, params entities.PlanningParameters, meanDailyDemand float64) float64 {
	z := zFactor(params.ServiceLevel)
	leadtimeFactor := decimal.NewFromFloat(math.Sqrt(float64(params.LeadtimeDays)))
	raw, _ := decimal.NewFromFloat(z).Mul(decimal.NewFromFloat(stdev)).Mul(leadtimeFactor).Float64()

	capDays := math.Max(30, 0.3*float64(params.LeadtimeDays))
	cap := capDays * meanDailyDemand
	if raw > cap {
		return cap
	}
	if raw < 0 {
		return 0
	}
	return raw
}

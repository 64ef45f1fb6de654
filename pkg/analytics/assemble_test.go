package analytics

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/demand"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

func testParams() entities.PlanningParameters {
	return entities.PlanningParameters{
		PeriodStart:     entities.MustParseDate("2026-01-01"),
		PeriodEnd:       entities.MustParseDate("2026-03-31"),
		SetupCost:       100,
		HoldingCostRate: 0.1,
		StockoutCostMultiplier: 2.5,
	}
}

func TestAssembleSummaryTotalsMatchInputs(t *testing.T) {
	params := testParams()
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-10"), Quantity: 30},
		{Date: entities.MustParseDate("2026-02-10"), Quantity: 20},
	}
	batches := []entities.Batch{
		{ArrivalDate: entities.MustParseDate("2026-01-05"), Quantity: 30},
		{ArrivalDate: entities.MustParseDate("2026-02-05"), Quantity: 20},
	}
	period := params.Period()
	sim := simulation.Simulate(0, batches, events, period, 1)
	profile := demand.Profile(events, period.Days())

	bundle := Assemble(batches, events, sim, profile, 0, params, entities.StrategyMedium)

	if bundle.Summary.TotalDemand != 50 {
		t.Fatalf("got total demand %v, want 50", bundle.Summary.TotalDemand)
	}
	if bundle.Summary.TotalProduced != 50 {
		t.Fatalf("got total produced %v, want 50", bundle.Summary.TotalProduced)
	}
	if bundle.Summary.TotalBatches != 2 {
		t.Fatalf("got total batches %d, want 2", bundle.Summary.TotalBatches)
	}
	if bundle.Summary.DemandFulfillmentRate != 100 {
		t.Fatalf("expected full demand fulfillment, got %v", bundle.Summary.DemandFulfillmentRate)
	}
}

func TestAssembleExcludesInformativeBatchesFromTotals(t *testing.T) {
	params := testParams()
	events := []entities.DemandEvent{}
	batches := []entities.Batch{
		{
			ArrivalDate: entities.MustParseDate("2026-01-05"),
			Quantity:    0,
			Analytics:   entities.BatchAnalytics{InformativeBatch: true},
		},
	}
	period := params.Period()
	sim := simulation.Simulate(0, batches, events, period, 0)
	profile := demand.Profile(events, period.Days())

	bundle := Assemble(batches, events, sim, profile, 0, params, entities.StrategyJIT)
	if bundle.Summary.TotalBatches != 0 {
		t.Fatalf("expected informative batches excluded from the total, got %d", bundle.Summary.TotalBatches)
	}
}

func TestAssembleCostPercentagesSumToRoughly100(t *testing.T) {
	params := testParams()
	events := []entities.DemandEvent{{Date: entities.MustParseDate("2026-01-10"), Quantity: 30}}
	batches := []entities.Batch{{ArrivalDate: entities.MustParseDate("2026-01-05"), Quantity: 30}}
	period := params.Period()
	sim := simulation.Simulate(0, batches, events, period, 1)
	profile := demand.Profile(events, period.Days())

	bundle := Assemble(batches, events, sim, profile, 0, params, entities.StrategyShort)
	sum := bundle.Cost.SetupCostPercent + bundle.Cost.HoldingCostPercent + bundle.Cost.StockoutCostPercent
	if sum < 99 || sum > 101 {
		t.Fatalf("cost percentages sum to %v, want ~100", sum)
	}
}

package planning

import (
	"math"
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/sizing"
)

func TestComputeQuantityCoversShortfallPlusSafety(t *testing.T) {
	params := entities.PlanningParameters{SafetyMarginPercent: 10}
	in := quantityInputs{
		groupDemand: 100,
		stockBefore: 20,
		params:      params,
		sizing:      sizing.Sizing{MinBatch: 0, MaxBatch: math.MaxFloat64},
	}
	qr := computeQuantity(in)
	if qr.Shortfall != 80 {
		t.Fatalf("got shortfall %v, want 80", qr.Shortfall)
	}
	if qr.Safety != 8 {
		t.Fatalf("got safety %v, want 8", qr.Safety)
	}
	if qr.Quantity != 88 {
		t.Fatalf("got quantity %v, want 88", qr.Quantity)
	}
}

func TestComputeQuantityIgnoresSafetyStockWhenFlagged(t *testing.T) {
	params := entities.PlanningParameters{SafetyMarginPercent: 50, IgnoreSafetyStock: true}
	in := quantityInputs{
		groupDemand: 100,
		stockBefore: 0,
		params:      params,
		sizing:      sizing.Sizing{MaxBatch: math.MaxFloat64},
	}
	qr := computeQuantity(in)
	if qr.Safety != 0 {
		t.Fatalf("expected zero safety with ignore_safety_stock, got %v", qr.Safety)
	}
	if qr.Quantity != 100 {
		t.Fatalf("got quantity %v, want 100", qr.Quantity)
	}
}

func TestComputeQuantityClampsToMinMaxBatch(t *testing.T) {
	params := entities.PlanningParameters{}
	in := quantityInputs{
		groupDemand: 1,
		stockBefore: 0,
		params:      params,
		sizing:      sizing.Sizing{MinBatch: 50, MaxBatch: 200},
	}
	qr := computeQuantity(in)
	if qr.Quantity != 50 {
		t.Fatalf("expected quantity clamped to min batch 50, got %v", qr.Quantity)
	}

	in.groupDemand = 1000
	qr = computeQuantity(in)
	if qr.Quantity != 200 {
		t.Fatalf("expected quantity clamped to max batch 200, got %v", qr.Quantity)
	}
}

func TestComputeQuantityAppliesLongLeadtimeExtensionOnlyWhenGapExceedsLeadtime(t *testing.T) {
	params := entities.PlanningParameters{}
	sz := sizing.Sizing{MaxBatch: math.MaxFloat64}

	short := quantityInputs{groupDemand: 10, leadtimeDays: 60, gapToNextDemand: 10, meanDailyDemand: 1, params: params, sizing: sz}
	qrShort := computeQuantity(short)
	if qrShort.LongLeadtimeOptimization {
		t.Fatal("expected no long-leadtime extension when gap <= leadtime")
	}

	long := quantityInputs{groupDemand: 10, leadtimeDays: 60, gapToNextDemand: 200, meanDailyDemand: 1, params: params, sizing: sz}
	qrLong := computeQuantity(long)
	if !qrLong.LongLeadtimeOptimization {
		t.Fatal("expected long-leadtime extension when gap > leadtime and leadtime >= 45")
	}
	if qrLong.Quantity <= qrShort.Quantity {
		t.Fatalf("expected the long-leadtime quantity to exceed the short one: %v vs %v", qrLong.Quantity, qrShort.Quantity)
	}
}

func TestForwardWeightedDemandDecaysToEdgeOfWindow(t *testing.T) {
	arrival := entities.MustParseDate("2026-01-01")
	future := []entities.DemandEvent{
		{Date: arrival, Quantity: 10},
		{Date: arrival.AddDays(10), Quantity: 10},
		{Date: arrival.AddDays(100), Quantity: 10}, // outside the window
	}
	got := forwardWeightedDemand(arrival, future, 10)
	// day 0 weight 1.0 -> 10; day 10 weight 0.2 -> 2; day 100 excluded.
	want := 10.0 + 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

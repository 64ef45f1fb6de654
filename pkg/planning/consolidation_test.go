package planning

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

func TestEvaluateConsolidationMergesOnNetBenefit(t *testing.T) {
	a := candidate{ArrivalDate: entities.MustParseDate("2026-01-01"), Quantity: 50, GroupSize: 1}
	b := candidate{ArrivalDate: entities.MustParseDate("2026-01-05"), Quantity: 50, GroupSize: 1}
	params := entities.PlanningParameters{SetupCost: 500, HoldingCostRate: 0.1}

	ok, decision := evaluateConsolidation(a, b, consolidationInputs{gapDays: 4, leadtimeOverlap: false, params: params})
	if !ok {
		t.Fatal("expected consolidation with a high setup cost and short gap")
	}
	if decision.Reason != entities.ConsolidationReasonNetBenefit && decision.Reason != entities.ConsolidationReasonShortGap {
		t.Fatalf("unexpected reason %v", decision.Reason)
	}
}

func TestEvaluateConsolidationDeclinesOnLargeGapAndLowSetupCost(t *testing.T) {
	a := candidate{ArrivalDate: entities.MustParseDate("2026-01-01"), Quantity: 50, GroupSize: 1}
	b := candidate{ArrivalDate: entities.MustParseDate("2026-06-01"), Quantity: 50, GroupSize: 1}
	params := entities.PlanningParameters{SetupCost: 1, HoldingCostRate: 0.5}

	ok, _ := evaluateConsolidation(a, b, consolidationInputs{gapDays: 150, leadtimeOverlap: false, params: params})
	if ok {
		t.Fatal("expected no consolidation across a 150-day gap with negligible setup cost")
	}
}

func TestEvaluateConsolidationForcedWithinLeadtimeOverlap(t *testing.T) {
	a := candidate{ArrivalDate: entities.MustParseDate("2026-01-01"), Quantity: 50, GroupSize: 1}
	b := candidate{ArrivalDate: entities.MustParseDate("2026-01-20"), Quantity: 50, GroupSize: 1}
	params := entities.PlanningParameters{
		SetupCost:                        10,
		HoldingCostRate:                  0.01,
		ForceConsolidationWithinLeadtime: true,
	}
	ok, decision := evaluateConsolidation(a, b, consolidationInputs{gapDays: 19, leadtimeOverlap: true, params: params})
	if !ok {
		t.Fatal("expected forced consolidation on leadtime overlap")
	}
	if decision.Reason == entities.ConsolidationReasonNone {
		t.Fatal("expected a populated reason")
	}
}

func TestEvaluateConsolidationMediumGapSmallBatchesUsesMinBatch(t *testing.T) {
	a := candidate{ArrivalDate: entities.MustParseDate("2026-01-01"), Quantity: 60, GroupSize: 1}
	b := candidate{ArrivalDate: entities.MustParseDate("2026-01-11"), Quantity: 60, GroupSize: 1}
	params := entities.PlanningParameters{
		SetupCost:               0,
		HoldingCostRate:         0,
		MinConsolidationBenefit: 1000,
	}

	ok, decision := evaluateConsolidation(a, b, consolidationInputs{
		gapDays:         10,
		leadtimeOverlap: false,
		params:          params,
		minBatch:        100,
	})
	if !ok {
		t.Fatal("expected the medium-gap/small-batches criterion to fire when minBatch is supplied")
	}
	if decision.Reason != entities.ConsolidationReasonMediumGapSmallBatches {
		t.Fatalf("got reason %v, want ConsolidationReasonMediumGapSmallBatches", decision.Reason)
	}
}

func TestEvaluateConsolidationSkipsMediumGapWhenBatchesAreNotSmall(t *testing.T) {
	a := candidate{ArrivalDate: entities.MustParseDate("2026-01-01"), Quantity: 600, GroupSize: 1}
	b := candidate{ArrivalDate: entities.MustParseDate("2026-01-11"), Quantity: 600, GroupSize: 1}
	params := entities.PlanningParameters{
		SetupCost:               500,
		HoldingCostRate:         50,
		MinConsolidationBenefit: 1000,
	}

	ok, _ := evaluateConsolidation(a, b, consolidationInputs{
		gapDays:         10,
		leadtimeOverlap: false,
		params:          params,
		minBatch:        100,
	})
	if ok {
		t.Fatal("expected no consolidation once quantities exceed 1.5x minBatch")
	}
}

func TestConsolidationQualityRating(t *testing.T) {
	if got := consolidationQuality(100, 100); got != entities.ConsolidationQualityHigh {
		t.Fatalf("got %v, want high", got)
	}
	if got := consolidationQuality(30, 100); got != entities.ConsolidationQualityMedium {
		t.Fatalf("got %v, want medium", got)
	}
	if got := consolidationQuality(1, 100); got != entities.ConsolidationQualityLow {
		t.Fatalf("got %v, want low", got)
	}
}

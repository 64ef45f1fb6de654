package planning

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/demand"
	"github.com/sporadicmrp/planner/pkg/domain/services/sizing"
)

func basicParams() entities.PlanningParameters {
	return entities.PlanningParameters{
		PeriodStart:     entities.MustParseDate("2026-01-01"),
		PeriodEnd:       entities.MustParseDate("2026-12-31"),
		StartCutoff:     entities.MustParseDate("2026-01-01"),
		EndCutoff:       entities.MustParseDate("2026-12-31"),
		LeadtimeDays:    14,
		SafetyDays:      2,
		SetupCost:       50,
		HoldingCostRate: 0.1,
		ServiceLevel:    0.95,
	}.WithDefaults()
}

func planWith(t *testing.T, events []entities.DemandEvent, params entities.PlanningParameters) []entities.Batch {
	t.Helper()
	profile := demand.Profile(events, params.Period().Days())
	sz := sizing.Estimate(events, params, profile, params.Period().Days())
	meanDaily := demand.MeanDailyDemand(profile.TotalDemand, params.Period().Days())
	return Plan(events, Inputs{InitialStock: params.InitialStock, Params: params, Sizing: sz, MeanDailyDemand: meanDaily})
}

func TestPlanReturnsNilForNoDemand(t *testing.T) {
	if got := planWith(t, nil, basicParams()); got != nil {
		t.Fatalf("expected nil batches for empty demand, got %v", got)
	}
}

func TestPlanOrderAndArrivalDatesRespectCutoffs(t *testing.T) {
	params := basicParams()
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-02-01"), Quantity: 100},
		{Date: entities.MustParseDate("2026-06-01"), Quantity: 50},
	}
	batches := planWith(t, events, params)
	if len(batches) == 0 {
		t.Fatal("expected at least one batch")
	}
	for _, b := range batches {
		if b.OrderDate.Before(params.StartCutoff) {
			t.Errorf("order date %s precedes start_cutoff %s", b.OrderDate, params.StartCutoff)
		}
		if b.ArrivalDate.After(params.EndCutoff) {
			t.Errorf("arrival date %s exceeds end_cutoff %s", b.ArrivalDate, params.EndCutoff)
		}
		if b.ArrivalDate.Sub(b.OrderDate) != params.LeadtimeDays {
			t.Errorf("arrival_date - order_date = %d, want leadtime_days %d", b.ArrivalDate.Sub(b.OrderDate), params.LeadtimeDays)
		}
		if b.Quantity <= 0 {
			t.Errorf("expected a positive quantity, got %v", b.Quantity)
		}
	}
}

func TestPlanExactQuantityMatchHitsTargetWithinTolerance(t *testing.T) {
	params := basicParams()
	params.ExactQuantityMatch = true
	params.InitialStock = 10

	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-02-01"), Quantity: 40},
		{Date: entities.MustParseDate("2026-03-01"), Quantity: 60},
		{Date: entities.MustParseDate("2026-09-01"), Quantity: 30},
	}
	batches := planWith(t, events, params)

	totalDemand := 0.0
	for _, e := range events {
		totalDemand += e.Quantity
	}
	target := totalDemand - params.InitialStock

	produced := 0.0
	for _, b := range batches {
		produced += b.Quantity
	}
	if diff := produced - target; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("produced %v, want %v within 1e-6", produced, target)
	}
}

// TestPlanConsolidatesCloseBatchesWhenEnabled exercises Phase A's own
// grouping (events within the coverage window always report
// ConsolidatedGroup once GroupSize > 1; no Phase D merge is needed here).
func TestPlanConsolidatesCloseBatchesWhenEnabled(t *testing.T) {
	params := basicParams()
	params.EnableConsolidation = true
	params.ForceConsolidationWithinLeadtime = true

	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-02-01"), Quantity: 20},
		{Date: entities.MustParseDate("2026-02-10"), Quantity: 20},
	}
	batches := planWith(t, events, params)
	found := false
	for _, b := range batches {
		if b.Analytics.ConsolidatedGroup && b.Analytics.GroupSize == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a consolidated group of 2, got %+v", batches)
	}
}

// TestPlanConsolidatesAcrossPhaseDWithMinBatch exercises Phase D's merge
// path directly: two demands 12 days apart split into separate Phase A
// groups (the 5-day-leadtime coverage window is only 10 days), but both
// batches stay under 1.5 × min_batch_size (the second is clamped up to
// min_batch_size itself), so the medium-gap/small-batches criterion merges
// them back into one batch.
func TestPlanConsolidatesAcrossPhaseDWithMinBatch(t *testing.T) {
	params := entities.PlanningParameters{
		PeriodStart:             entities.MustParseDate("2026-01-01"),
		PeriodEnd:               entities.MustParseDate("2026-12-31"),
		StartCutoff:             entities.MustParseDate("2026-01-01"),
		EndCutoff:               entities.MustParseDate("2026-12-31"),
		LeadtimeDays:            5,
		EnableConsolidation:     true,
		MinBatchSize:            100,
		MinConsolidationBenefit: 1000,
	}.WithDefaults()

	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-01"), Quantity: 60},
		{Date: entities.MustParseDate("2026-01-13"), Quantity: 60},
	}
	batches := planWith(t, events, params)
	if len(batches) != 1 {
		t.Fatalf("expected Phase D to merge the two batches into one, got %d: %+v", len(batches), batches)
	}
	if !batches[0].Analytics.ConsolidatedGroup {
		t.Fatalf("expected the merged batch to report ConsolidatedGroup, got %+v", batches[0].Analytics)
	}
}

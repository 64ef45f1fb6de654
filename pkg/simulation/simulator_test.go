package simulation

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

func TestSimulateArrivalCoversSameDayDemand(t *testing.T) {
	period := entities.Period{Start: entities.MustParseDate("2026-01-01"), End: entities.MustParseDate("2026-01-05")}
	batches := []entities.Batch{
		{ArrivalDate: entities.MustParseDate("2026-01-03"), Quantity: 20},
	}
	demands := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-03"), Quantity: 20},
	}
	res := Simulate(0, batches, demands, period, 4)
	for _, d := range res.StockEvolution {
		if d.Date.Equal(entities.MustParseDate("2026-01-03")) && d.Stock != 0 {
			t.Fatalf("expected stock 0 after same-day arrival+demand, got %v", d.Stock)
		}
	}
}

func TestSimulateExcludesInformativeBatches(t *testing.T) {
	period := entities.Period{Start: entities.MustParseDate("2026-01-01"), End: entities.MustParseDate("2026-01-05")}
	batches := []entities.Batch{
		{
			ArrivalDate: entities.MustParseDate("2026-01-02"),
			Quantity:    1000,
			Analytics:   entities.BatchAnalytics{InformativeBatch: true},
		},
	}
	res := Simulate(0, batches, nil, period, 1)
	if res.FinalStock != 0 {
		t.Fatalf("expected informative batch to be excluded, got final stock %v", res.FinalStock)
	}
}

func TestSimulateDetectsStockout(t *testing.T) {
	period := entities.Period{Start: entities.MustParseDate("2026-01-01"), End: entities.MustParseDate("2026-01-05")}
	demands := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-02"), Quantity: 50},
	}
	res := Simulate(10, nil, demands, period, 10)
	if res.StockoutSeverity <= 0 {
		t.Fatalf("expected positive stockout severity, got %v", res.StockoutSeverity)
	}
	foundStockout := false
	for _, cp := range res.CriticalPoints {
		if cp.Severity == entities.SeverityStockout {
			foundStockout = true
		}
	}
	if !foundStockout {
		t.Fatal("expected a stockout critical point")
	}
}

func TestSimulateMinimumStockTracksLowestPoint(t *testing.T) {
	period := entities.Period{Start: entities.MustParseDate("2026-01-01"), End: entities.MustParseDate("2026-01-05")}
	demands := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-02"), Quantity: 5},
		{Date: entities.MustParseDate("2026-01-04"), Quantity: 1},
	}
	res := Simulate(10, nil, demands, period, 3)
	if res.MinimumStock != 4 {
		t.Fatalf("got minimum stock %v, want 4", res.MinimumStock)
	}
	if !res.MinimumStockDate.Equal(entities.MustParseDate("2026-01-04")) {
		t.Fatalf("got minimum stock date %v, want 2026-01-04", res.MinimumStockDate)
	}
}

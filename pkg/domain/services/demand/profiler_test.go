package demand

import (
	"math"
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

func TestProfileEmptyInputIsZeroValue(t *testing.T) {
	m := Profile(nil, 90)
	if m.TotalDemand != 0 || m.Mean != 0 || m.CV != 0 {
		t.Fatalf("expected zero-value metrics, got %+v", m)
	}
}

func TestProfileComputesMeanAndCV(t *testing.T) {
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-01"), Quantity: 10},
		{Date: entities.MustParseDate("2026-01-15"), Quantity: 10},
		{Date: entities.MustParseDate("2026-02-01"), Quantity: 10},
	}
	m := Profile(events, 90)
	if m.TotalDemand != 30 {
		t.Fatalf("got total %v, want 30", m.TotalDemand)
	}
	if m.Mean != 10 {
		t.Fatalf("got mean %v, want 10", m.Mean)
	}
	if m.CV != 0 {
		t.Fatalf("got cv %v, want 0 for identical quantities", m.CV)
	}
	if m.XYZ != entities.XYZClassX {
		t.Fatalf("expected class X for zero variance, got %v", m.XYZ)
	}
}

func TestProfileHighVarianceIsLowPredictability(t *testing.T) {
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-01"), Quantity: 1},
		{Date: entities.MustParseDate("2026-01-15"), Quantity: 100},
		{Date: entities.MustParseDate("2026-02-01"), Quantity: 1},
	}
	m := Profile(events, 90)
	if m.Predictability != entities.PredictabilityLow {
		t.Fatalf("expected low predictability, got %v", m.Predictability)
	}
}

func TestMeanDailyDemand(t *testing.T) {
	if got := MeanDailyDemand(100, 0); got != 0 {
		t.Fatalf("expected 0 for zero period, got %v", got)
	}
	if got := MeanDailyDemand(100, 50); math.Abs(got-2) > 1e-9 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestClassifyABCAssignsAToLargestShare(t *testing.T) {
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-01"), Quantity: 90},
		{Date: entities.MustParseDate("2026-01-02"), Quantity: 5},
		{Date: entities.MustParseDate("2026-01-03"), Quantity: 5},
	}
	m := Profile(events, 90)
	if len(m.EventClasses) != 3 {
		t.Fatalf("got %d classes, want 3", len(m.EventClasses))
	}
	for _, c := range m.EventClasses {
		if c.Quantity == 90 && c.ABC != entities.ABCClassA {
			t.Fatalf("expected the dominant event to be class A, got %v", c.ABC)
		}
	}
}

package strategy

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

func TestSelectByLeadtime(t *testing.T) {
	cases := []struct {
		leadtime int
		want     entities.Strategy
	}{
		{0, entities.StrategyJIT},
		{14, entities.StrategyShort},
		{45, entities.StrategyMedium},
		{90, entities.StrategyLongHybrid},
	}
	flat := entities.DemandMetrics{ConcentrationLevel: entities.ConcentrationLow, Predictability: entities.PredictabilityHigh}
	for _, c := range cases {
		if got := Select(c.leadtime, flat); got != c.want {
			t.Errorf("Select(%d) = %v, want %v", c.leadtime, got, c.want)
		}
	}
}

func TestSelectEscalatesToHybridOnConcentratedUnpredictableDemand(t *testing.T) {
	profile := entities.DemandMetrics{ConcentrationLevel: entities.ConcentrationHigh, Predictability: entities.PredictabilityLow}
	if got := Select(20, profile); got != entities.StrategyLongHybrid {
		t.Fatalf("expected escalation to long_hybrid, got %v", got)
	}
}

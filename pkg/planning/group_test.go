package planning

import (
	"testing"

	"github.com/sporadicmrp/planner/pkg/domain/entities"
)

func TestGroupSplitsOnLargeGaps(t *testing.T) {
	events := []entities.DemandEvent{
		{Date: entities.MustParseDate("2026-01-01"), Quantity: 5},
		{Date: entities.MustParseDate("2026-01-05"), Quantity: 5},
		{Date: entities.MustParseDate("2026-06-01"), Quantity: 5},
	}
	groups := group(events, 14, 14)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %v", len(groups), groups)
	}
	if len(groups[0]) != 2 {
		t.Fatalf("expected first group to contain the two nearby events, got %d", len(groups[0]))
	}
}

func TestGroupSingleEvent(t *testing.T) {
	events := []entities.DemandEvent{{Date: entities.MustParseDate("2026-01-01"), Quantity: 5}}
	groups := group(events, 10, 10)
	if len(groups) != 1 || len(groups[0]) != 1 {
		t.Fatalf("expected a single group of one event, got %v", groups)
	}
}

func TestWindowMultiplierDialsByMaxGap(t *testing.T) {
	cases := []struct {
		gap  int
		want int
	}{
		{5, 1},
		{14, 1},
		{30, 3},
		{90, 5},
		{365, 5},
	}
	for _, c := range cases {
		if got := windowMultiplier(c.gap); got != c.want {
			t.Errorf("windowMultiplier(%d) = %d, want %d", c.gap, got, c.want)
		}
	}
}

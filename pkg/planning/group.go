package planning

import "github.com/sporadicmrp/planner/pkg/domain/entities"

// maxGapDaysUnset is the sentinel PlanningParameters.WithDefaults fills in
// when the caller never set max_gap_days (spec §3 default 999). It is
// deliberately excluded from the aggressiveness tiers below: "default"
// must mean "no widening requested", not "maximum widening", or every
// plan without an explicit max_gap_days would collapse into one group
// regardless of how far apart its demands actually are.
const maxGapDaysUnset = 999

// windowMultiplier returns the consolidation-aggressiveness multiplier the
// open question of §9 resolves max_gap_days to: a dial, not a hard limit.
// Only a caller-supplied value is read as a dial setting; the unset
// sentinel is neutral.
func windowMultiplier(maxGapDays int) int {
	switch {
	case maxGapDays == maxGapDaysUnset:
		return 1
	case maxGapDays >= 90:
		return 5
	case maxGapDays >= 30:
		return 3
	case maxGapDays >= 14:
		return 1
	default:
		return 1
	}
}

// coverageWindowDays computes the base±dial coverage window of Phase A.
func coverageWindowDays(leadtimeDays int, maxGapDays int) int {
	base := 2 * leadtimeDays
	if base > 45 {
		base = 45
	}
	return base * windowMultiplier(maxGapDays)
}

// group implements Phase A: starting from the earliest unserved demand,
// greedily extend the current group while the next demand date lies
// within the coverage window measured from the group's first date.
func group(events []entities.DemandEvent, leadtimeDays int, maxGapDays int) [][]entities.DemandEvent {
	if len(events) == 0 {
		return nil
	}
	window := coverageWindowDays(leadtimeDays, maxGapDays)

	var groups [][]entities.DemandEvent
	current := []entities.DemandEvent{events[0]}
	groupStart := events[0].Date

	for i := 1; i < len(events); i++ {
		e := events[i]
		if e.Date.Sub(groupStart) <= window {
			current = append(current, e)
			continue
		}
		groups = append(groups, current)
		current = []entities.DemandEvent{e}
		groupStart = e.Date
	}
	groups = append(groups, current)
	return groups
}

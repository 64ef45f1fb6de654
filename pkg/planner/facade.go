// Package planner implements C9 (the orchestrating façade) and C10 (the
// informative/excess batch generator). Plan is the single entry point
// every interface (CLI, future HTTP/gRPC adapters) calls into.
package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sporadicmrp/planner/pkg/analytics"
	"github.com/sporadicmrp/planner/pkg/domain/entities"
	"github.com/sporadicmrp/planner/pkg/domain/services/demand"
	"github.com/sporadicmrp/planner/pkg/domain/services/sizing"
	"github.com/sporadicmrp/planner/pkg/domain/services/strategy"
	plannererrors "github.com/sporadicmrp/planner/pkg/errors"
	"github.com/sporadicmrp/planner/pkg/logger"
	"github.com/sporadicmrp/planner/pkg/metrics"
	"github.com/sporadicmrp/planner/pkg/planning"
	"github.com/sporadicmrp/planner/pkg/simulation"
)

// Planner wires the domain services, ambient logging/metrics, and the
// batch planner itself behind a single Plan method.
type Planner struct {
	log     logger.Logger
	metrics *metrics.Planner
}

// New builds a Planner. Pass logger.NewNop()/metrics.NewNop() for tests or
// library embedding that doesn't want planner output or a metrics handle.
func New(log logger.Logger, m *metrics.Planner) *Planner {
	return &Planner{log: log, metrics: m}
}

// Plan implements §4.1–§4.10 end to end: normalize demand (C2), profile it
// (C3), size the batches (C4), select a strategy (C5), run the batch
// planner (C6), simulate the result (C7), and assemble analytics (C8). A
// plan_id is minted and attached to every log line of the call so external
// logs can be correlated to a single call; the returned result does not
// carry it.
func (p *Planner) Plan(ctx context.Context, rawDemand map[string]float64, params entities.PlanningParameters) (*entities.PlanResult, error) {
	planID := uuid.NewString()
	ctx = logger.WithPlanID(ctx, planID)
	start := time.Now()

	result, err := p.plan(ctx, rawDemand, params)

	outcome := "success"
	strategyLabel := "unknown"
	if err != nil {
		outcome = "error"
		if pe, ok := err.(*plannererrors.PlannerError); ok {
			outcome = string(pe.Code)
		}
	} else {
		strategyLabel = result.Analytics.Summary.Strategy.String()
	}
	if p.metrics != nil {
		p.metrics.Calls.WithLabelValues(outcome).Inc()
		p.metrics.CallDuration.WithLabelValues(strategyLabel).Observe(time.Since(start).Seconds())
		if result != nil {
			p.metrics.BatchesEmitted.Observe(float64(len(result.Batches)))
			stockoutDays := 0
			for _, d := range result.Analytics.StockEvolution {
				if d.Stock < 0 {
					stockoutDays++
				}
			}
			p.metrics.StockoutDays.Observe(float64(stockoutDays))
		}
	}

	if err != nil {
		p.log.Error(ctx, err, "plan failed", logger.Fields{"plan_id": planID})
		return result, err
	}

	for _, b := range result.Batches {
		if b.Analytics.CapacityExceeded {
			p.log.Warn(ctx, plannererrors.NewCapacityExceeded("batch quantity clamped to max_batch with no cutoff room left for a follow-up order").Error(), logger.Fields{
				"plan_id":      planID,
				"arrival_date": b.ArrivalDate.String(),
				"unmet_demand": b.Analytics.UnmetDemand,
			})
		}
	}
	p.log.Info(ctx, "plan completed", logger.Fields{
		"plan_id":       planID,
		"batches":       len(result.Batches),
		"strategy":      strategyLabel,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	return result, nil
}

func (p *Planner) plan(ctx context.Context, rawDemand map[string]float64, params entities.PlanningParameters) (*entities.PlanResult, error) {
	params = params.WithDefaults()

	if err := validateWindow(params); err != nil {
		if plannererrors.Is(err, plannererrors.CodeInfeasibleWindow) {
			return partialResult(rawDemand, params), err
		}
		return nil, err
	}

	period := params.Period()
	allowEmpty := params.ForceInformativeBatches || params.ForceExcessProduction
	events, err := demand.Normalize(rawDemand, period, allowEmpty)
	if err != nil {
		return nil, err
	}

	periodDays := period.Days()
	profile := demand.Profile(events, periodDays)
	meanDaily := demand.MeanDailyDemand(profile.TotalDemand, periodDays)
	sz := sizing.Estimate(events, params, profile, periodDays)
	strat := strategy.Select(params.LeadtimeDays, profile)

	var batches []entities.Batch
	if len(events) > 0 {
		batches = planning.Plan(events, planning.Inputs{
			InitialStock:    params.InitialStock,
			Params:          params,
			Sizing:          sz,
			MeanDailyDemand: meanDaily,
		})
	}

	// Zero real batches with no force flag set is a legitimate outcome
	// (initial stock already covers demand): the plan is returned empty.
	if len(batches) == 0 {
		if informative, ok := generateInformativeOrExcess(events, params); ok {
			batches = []entities.Batch{informative}
		}
	}

	sim := simulation.Simulate(params.InitialStock, batches, events, period, meanDaily)
	bundle := analytics.Assemble(batches, events, sim, profile, params.InitialStock, params, strat)

	p.log.Debug(ctx, "plan stages complete", logger.Fields{
		"events":       len(events),
		"batches":      len(batches),
		"strategy":     strat.String(),
	})

	return &entities.PlanResult{Batches: batches, Analytics: bundle}, nil
}

// partialResult builds the §7 InfeasibleWindow analytics: no batches are
// emitted, but stock is still simulated against initial_stock and demand
// alone so stockouts are surfaced to the caller instead of an empty shell.
func partialResult(rawDemand map[string]float64, params entities.PlanningParameters) *entities.PlanResult {
	period := params.Period()
	events, _ := demand.Normalize(rawDemand, period, true)

	periodDays := period.Days()
	profile := demand.Profile(events, periodDays)
	meanDaily := demand.MeanDailyDemand(profile.TotalDemand, periodDays)

	sim := simulation.Simulate(params.InitialStock, nil, events, period, meanDaily)
	bundle := analytics.Assemble(nil, events, sim, profile, params.InitialStock, params, entities.StrategyJIT)

	return &entities.PlanResult{Batches: nil, Analytics: bundle}
}

// validateWindow enforces the §7 CodeInfeasibleWindow precondition before
// any planning work starts.
func validateWindow(params entities.PlanningParameters) error {
	if params.StartCutoff.AddDays(params.LeadtimeDays).After(params.EndCutoff) {
		return plannererrors.NewInfeasibleWindow("start_cutoff + leadtime_days exceeds end_cutoff")
	}
	if params.PeriodEnd.Before(params.PeriodStart) {
		return plannererrors.NewInvalidInput("period_end precedes period_start")
	}
	if params.LeadtimeDays < 0 {
		return plannererrors.NewInvalidInput("leadtime_days must be non-negative")
	}
	return nil
}

// Package request implements C11: the external JSON request/response
// envelope and its validation, independent of any particular transport.
package request

import (
	"github.com/sporadicmrp/planner/pkg/domain/entities"
	plannererrors "github.com/sporadicmrp/planner/pkg/errors"
)

// Request is the full external input shape of §6: raw demand keyed by
// "YYYY-MM-DD" plus the planning parameters.
type Request struct {
	Demand     map[string]float64         `json:"demand"`
	Parameters entities.PlanningParameters `json:"parameters"`
}

// Response is the successful external output shape of §6.
type Response struct {
	PlanID  string               `json:"plan_id"`
	Batches []entities.Batch     `json:"batches"`
	Analytics entities.AnalyticsBundle `json:"analytics"`
}

// ErrorResponse is the external error shape of §6/§7: batches is always
// empty and analytics is whatever partial view the façade could still
// compute (zero-valued for InvalidInput, simulated-over-demand for
// InfeasibleWindow).
type ErrorResponse struct {
	Error     bool                     `json:"error"`
	Message   string                   `json:"message"`
	Batches   []entities.Batch         `json:"batches"`
	Analytics entities.AnalyticsBundle `json:"analytics"`
}

// NewErrorResponse builds the §6 error envelope for message, carrying
// whatever partial analytics the caller already computed.
func NewErrorResponse(message string, analytics entities.AnalyticsBundle) ErrorResponse {
	return ErrorResponse{
		Error:     true,
		Message:   message,
		Batches:   []entities.Batch{},
		Analytics: analytics,
	}
}

// Validate checks the request shape before it reaches the façade,
// returning a CodeInvalidInput *errors.PlannerError on the first problem
// found.
func Validate(req Request) error {
	p := req.Parameters

	if p.PeriodStart.IsZero() || p.PeriodEnd.IsZero() {
		return plannererrors.NewInvalidInput("parameters.period_start and parameters.period_end are required")
	}
	if p.StartCutoff.IsZero() || p.EndCutoff.IsZero() {
		return plannererrors.NewInvalidInput("parameters.start_cutoff and parameters.end_cutoff are required")
	}
	if p.LeadtimeDays < 0 {
		return plannererrors.NewInvalidInput("parameters.leadtime_days must be non-negative")
	}
	if p.InitialStock < 0 {
		return plannererrors.NewInvalidInput("parameters.initial_stock must be non-negative")
	}
	if len(req.Demand) == 0 && !p.ForceInformativeBatches && !p.ForceExcessProduction {
		return plannererrors.NewInvalidInput("demand is empty; set force_informative_batches or force_excess_production to plan anyway")
	}
	for dateStr, qty := range req.Demand {
		if _, err := entities.ParseDate(dateStr); err != nil {
			return plannererrors.NewInvalidInput("invalid demand date " + dateStr)
		}
		if qty < 0 {
			return plannererrors.NewInvalidInput("demand quantity for " + dateStr + " must be non-negative")
		}
	}
	return nil
}

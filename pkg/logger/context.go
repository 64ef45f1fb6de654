package logger

import "context"

type contextKey string

const planIDKey contextKey = "plan_id"

// WithPlanID attaches a correlation id (typically a uuid minted at the
// façade boundary, one per Plan call) to ctx.
func WithPlanID(ctx context.Context, planID string) context.Context {
	return context.WithValue(ctx, planIDKey, planID)
}

// ExtractPlanID reads back the correlation id set by WithPlanID, or "" if
// none was set.
func ExtractPlanID(ctx context.Context) string {
	if id, ok := ctx.Value(planIDKey).(string); ok {
		return id
	}
	return ""
}

// Package logger wraps zerolog behind a narrow interface so the planning
// packages depend on a verb-based contract (Debug/Info/Warn/Error) instead
// of the concrete logging library, the way giia-core-engine's pkg/logger
// wraps the same dependency.
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// Fields is a bag of structured key/value pairs attached to a log line.
type Fields map[string]interface{}

// Logger is the narrow contract every planning package logs through.
type Logger interface {
	Debug(ctx context.Context, msg string, fields Fields)
	Info(ctx context.Context, msg string, fields Fields)
	Warn(ctx context.Context, msg string, fields Fields)
	Error(ctx context.Context, err error, msg string, fields Fields)
}

// ZerologLogger is the production Logger implementation.
type ZerologLogger struct {
	logger zerolog.Logger
}

// New builds a ZerologLogger writing to stdout at the given level
// ("debug", "info", "warn", "error"; defaults to "info").
func New(component string, level string) *ZerologLogger {
	zerolog.SetGlobalLevel(parseLevel(level))
	l := zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{logger: l}
}

// NewNop builds a Logger that discards every line, for tests and library
// callers that don't want planner output on stdout.
func NewNop() *ZerologLogger {
	return &ZerologLogger{logger: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZerologLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.withFields(ctx, l.logger.Debug(), fields).Msg(msg)
}

func (l *ZerologLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.withFields(ctx, l.logger.Info(), fields).Msg(msg)
}

func (l *ZerologLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.withFields(ctx, l.logger.Warn(), fields).Msg(msg)
}

func (l *ZerologLogger) Error(ctx context.Context, err error, msg string, fields Fields) {
	l.withFields(ctx, l.logger.Error().Err(err), fields).Msg(msg)
}

func (l *ZerologLogger) withFields(ctx context.Context, event *zerolog.Event, fields Fields) *zerolog.Event {
	if ctx != nil {
		if planID := ExtractPlanID(ctx); planID != "" {
			event = event.Str("plan_id", planID)
		}
	}
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}

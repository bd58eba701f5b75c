package checkplus

import (
	"context"
	"fmt"

	"passnice/internal/components/assert"
	"passnice/internal/components/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	outcomeSuccess     = "success"
	outcomeSoftFailure = "soft_failure"
	outcomeError       = "error"
)

const outcomeCounterName = "checkplus.outcomes"

func newOutcomeCounter(provider metric.MeterProvider, tel telemetry.API) metric.Int64Counter {
	counter, err := provider.Meter("passnice/checkplus").Int64Counter(
		outcomeCounterName,
		metric.WithDescription("Outcomes of verification session operations."),
	)
	if err != nil {
		tel.ReportWarning(report_session_new, fmt.Errorf("create %s counter: %w", outcomeCounterName, err))
		return noop.Int64Counter{}
	}
	return counter
}

func (s *Session) recordOutcome(ctx context.Context, operation, outcome string) {
	assert.OneOf(outcome, outcomeSuccess, outcomeSoftFailure, outcomeError)
	s.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("method", string(s.m.method)),
		attribute.String("carrier_group", s.carrier.Group()),
		attribute.String("outcome", outcome),
	))
}

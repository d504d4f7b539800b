// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ToolMetrics tracks tool invocation counts, durations and audit failures.
type ToolMetrics struct {
	invocations   metric.Int64Counter
	duration      metric.Float64Histogram
	auditFailures metric.Int64Counter
}

// NewToolMetrics creates a tool metrics tracker on the global meter.
func NewToolMetrics() (*ToolMetrics, error) {
	meter := otel.Meter("ergon/tools")

	invocations, err := meter.Int64Counter(
		"ergon.tools.invocations",
		metric.WithDescription("Tool invocations by agent, tool and outcome"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"ergon.tools.duration",
		metric.WithDescription("Tool execution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	auditFailures, err := meter.Int64Counter(
		"ergon.audit.failures",
		metric.WithDescription("Action log append failures (swallowed)"),
	)
	if err != nil {
		return nil, err
	}

	return &ToolMetrics{
		invocations:   invocations,
		duration:      duration,
		auditFailures: auditFailures,
	}, nil
}

// RecordInvocation records one tool call and its outcome.
func (m *ToolMetrics) RecordInvocation(ctx context.Context, agentID, tool string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("agent.id", agentID),
		attribute.String("tool.name", tool),
		attribute.String("outcome", outcome),
	)
	m.invocations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}

// RecordAuditFailure counts a swallowed action log write failure.
func (m *ToolMetrics) RecordAuditFailure(ctx context.Context, agentID, tool string) {
	if m == nil {
		return
	}
	m.auditFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("agent.id", agentID),
		attribute.String("tool.name", tool),
	))
}

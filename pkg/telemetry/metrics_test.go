package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestToolMetricsNoopSafe(t *testing.T) {
	// Global providers default to no-op; recording must not panic.
	m, err := NewToolMetrics()
	if err != nil {
		t.Fatalf("NewToolMetrics failed: %v", err)
	}
	ctx := context.Background()
	m.RecordInvocation(ctx, "demo-1", "ping", 5*time.Millisecond, nil)
	m.RecordInvocation(ctx, "demo-1", "ping", time.Millisecond, errors.New("boom"))
	m.RecordAuditFailure(ctx, "demo-1", "ping")
}

func TestToolMetricsNilReceiver(t *testing.T) {
	var m *ToolMetrics
	m.RecordInvocation(context.Background(), "a", "t", 0, nil)
	m.RecordAuditFailure(context.Background(), "a", "t")
}

func TestInitWithConfigNone(t *testing.T) {
	shutdown, err := InitWithConfig("ergon-test", "0.0.0", Config{Exporter: "none"})
	if err != nil {
		t.Fatalf("none exporter should succeed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestInitWithConfigUnknownExporter(t *testing.T) {
	if _, err := InitWithConfig("ergon-test", "0.0.0", Config{Exporter: "carrier-pigeon"}); err == nil {
		t.Fatal("unknown exporter should fail")
	}
}

func TestInitOTLPRequiresEndpoint(t *testing.T) {
	if _, err := InitWithConfig("ergon-test", "0.0.0", Config{Exporter: "otlp"}); err == nil {
		t.Fatal("otlp without endpoint should fail")
	}
}

package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("shutdown is nil")
	}

	_, span := Tracer("test").Start(ctx, "noop")
	if span.SpanContext().IsSampled() {
		t.Error("no-op span should not be sampled")
	}
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

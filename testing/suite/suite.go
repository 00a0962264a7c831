package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"
)

const (
	maxWaitDuration = 30 * time.Second
	seed            = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Tracer trace.Tracer
	Spans  *tracetest.SpanRecorder
	Rand   *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() {
		t.Helper()

		if err := provider.Shutdown(context.Background()); err != nil {
			t.Fatalf("could not shut down tracer provider: %v", err)
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Tracer: provider.Tracer("jungle-king/test"),
		Spans:  recorder,
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// SpanNames - names of the spans ended so far, in order.
func (that *Suite) SpanNames() []string {
	var names []string
	for _, span := range that.Spans.Ended() {
		names = append(names, span.Name())
	}

	return names
}

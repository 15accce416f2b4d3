package service

import (
	"context"
	"testing"
	"time"

	"food_monitor/internal/logger"
	"food_monitor/internal/models"
	"food_monitor/internal/repository"
)

func newEvaluatorFixture(t *testing.T) (*EvaluatorService, *SignalService, *ReadingBuffer, *time.Time) {
	t.Helper()
	clock := fixedNow
	now := func() time.Time { return clock }

	signal := NewSignalService(repository.NewMemorySignalStore(logger.Nop()), logger.Nop())
	signal.now = now
	readings := NewReadingBuffer(10, logger.Nop())
	readings.now = now
	return NewEvaluatorService(signal, readings, logger.Nop()), signal, readings, &clock
}

func TestEvaluator_evaluate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no category selected is a no-op", func(t *testing.T) {
		t.Parallel()
		ev, signal, readings, clock := newEvaluatorFixture(t)
		*clock = clock.Add(time.Second)
		if _, err := readings.Ingest(ctx, ReadingInput{Temperature: fptr(20)}); err != nil {
			t.Fatalf("ingest: %v", err)
		}
		if ev.evaluate(ctx) {
			t.Fatal("expected no re-evaluation")
		}
		if got := signal.Current(ctx); got.Status != models.StatusUnknown {
			t.Fatalf("expected UNKNOWN, got %s", got.Status)
		}
	})

	t.Run("newer reading re-classifies the selected category", func(t *testing.T) {
		t.Parallel()
		ev, signal, readings, clock := newEvaluatorFixture(t)
		if _, err := signal.Select(ctx, SelectParams{Category: "carnes", Temperature: fptr(3)}); err != nil {
			t.Fatalf("select: %v", err)
		}
		*clock = clock.Add(2 * time.Second)
		if _, err := readings.Ingest(ctx, ReadingInput{Temperature: fptr(9), Humidity: fptr(80)}); err != nil {
			t.Fatalf("ingest: %v", err)
		}

		if !ev.evaluate(ctx) {
			t.Fatal("expected re-evaluation")
		}
		got := signal.Current(ctx)
		if got.Status != models.StatusCritical || !got.RedOn || *got.Temperature != 9 {
			t.Fatalf("unexpected state %+v", got)
		}

		// Same reading again must not produce another write.
		if ev.evaluate(ctx) {
			t.Fatal("stale reading re-applied")
		}
	})

	t.Run("readings without temperature are skipped", func(t *testing.T) {
		t.Parallel()
		ev, signal, readings, clock := newEvaluatorFixture(t)
		if _, err := signal.Select(ctx, SelectParams{Category: "lacteos", Temperature: fptr(2)}); err != nil {
			t.Fatalf("select: %v", err)
		}
		*clock = clock.Add(time.Second)
		light := 1200
		if _, err := readings.Ingest(ctx, ReadingInput{LightLevel: &light}); err != nil {
			t.Fatalf("ingest: %v", err)
		}
		if ev.evaluate(ctx) {
			t.Fatal("expected no re-evaluation")
		}
	})
}

func TestEvaluator_RunStopsOnCancel(t *testing.T) {
	t.Parallel()
	ev, _, _, _ := newEvaluatorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ev.Run(ctx, 5*time.Millisecond)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

package service

import (
	"context"
	"time"

	"food_monitor/internal/logger"
)

// EvaluatorService re-classifies the selected category whenever a newer
// temperature sample arrives in the reading buffer.
type EvaluatorService struct {
	signal   Signal
	readings Readings
	log      *logger.Logger
}

func NewEvaluatorService(signal Signal, readings Readings, log *logger.Logger) *EvaluatorService {
	return &EvaluatorService{signal: signal, readings: readings, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (e *EvaluatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.evaluate(ctx)
		}
	}
}

// evaluate runs one pass. It reports whether a new state was written.
func (e *EvaluatorService) evaluate(ctx context.Context) bool {
	cur := e.signal.Current(ctx)
	if cur.Category == nil {
		return false
	}

	r, ok := e.readings.LatestTemperature(ctx)
	if !ok || !r.Timestamp.After(cur.LastUpdate) {
		return false
	}

	_, err := e.signal.Select(ctx, SelectParams{Category: *cur.Category, Temperature: r.Temperature})
	if err != nil {
		if e.log != nil {
			e.log.Warnw("evaluator_select_failed", "category", *cur.Category, "reading_id", r.ID, "err", err)
		}
		return false
	}
	return true
}

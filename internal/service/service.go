package service

import (
	"context"
	"time"

	"food_monitor/internal/logger"
	"food_monitor/internal/models"
	"food_monitor/internal/repository"
)

// Signal is the control surface over the traffic-light state.
type Signal interface {
	// Select classifies a sample for a category and persists the result.
	Select(ctx context.Context, p SelectParams) (SelectResult, error)
	// Current returns the last persisted state. It never fails.
	Current(ctx context.Context) models.SignalState
	// CurrentForDevice returns the flat 0/1 payload; on internal fault it
	// returns the all-off ERROR payload instead.
	CurrentForDevice(ctx context.Context) models.DeviceSignal
}

// Readings is the bounded buffer of recent sensor samples.
type Readings interface {
	Ingest(ctx context.Context, in ReadingInput) (models.SensorReading, error)
	List(ctx context.Context) []models.SensorReading
	Count(ctx context.Context) int
	LatestTemperature(ctx context.Context) (models.SensorReading, bool)
	Stats(ctx context.Context) models.ReadingStats
}

// Evaluator re-applies the selected category to new samples in the background.
// Stop via context cancellation in main().
type Evaluator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Analysis produces human-readable reports, optionally enriched by an LLM.
// It never touches the signal state.
type Analysis interface {
	FoodReport(ctx context.Context, p FoodCheckParams) (models.FoodReport, error)
	AnalyzeSensors(ctx context.Context, readings []models.SensorReading) (models.SensorAnalysis, error)
}

// Service aggregates all sub-services.
type Service struct {
	Signal
	Readings
	Evaluator
	Analysis
}

// Deps carries what NewService needs to build the sub-services.
type Deps struct {
	Store           repository.SignalStore
	Generator       TextGenerator // nil disables LLM calls
	Model           ModelConfig
	LLMTimeout      time.Duration
	ReadingCapacity int
	Log             *logger.Logger
}

func NewService(d Deps) *Service {
	signal := NewSignalService(d.Store, d.Log)
	readings := NewReadingBuffer(d.ReadingCapacity, d.Log)
	return &Service{
		Signal:    signal,
		Readings:  readings,
		Evaluator: NewEvaluatorService(signal, readings, d.Log),
		Analysis:  NewAnalysisService(d.Generator, d.Model, d.LLMTimeout, readings, d.Log),
	}
}

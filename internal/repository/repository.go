package repository

import (
	"context"

	"food_monitor/internal/models"
)

// SignalRepo is a durable medium holding the single signal slot.
// Load returns (nil, nil) when nothing has been written yet.
type SignalRepo interface {
	Save(ctx context.Context, s models.SignalState) error
	Load(ctx context.Context) (*models.SignalState, error)
}

// SignalStore is the availability-first holder of the latest signal.
// Read never fails and Write always succeeds from the caller's view;
// durable-medium faults only degrade durability.
type SignalStore interface {
	Read(ctx context.Context) models.SignalState
	Write(ctx context.Context, s models.SignalState)
}

// Ensure implementations satisfy the interfaces at compile time.
var (
	_ SignalRepo  = (*SignalSQLite)(nil)
	_ SignalRepo  = (*SignalDynamo)(nil)
	_ SignalStore = (*CachedSignalStore)(nil)
)

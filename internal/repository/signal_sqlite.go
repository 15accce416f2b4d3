package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"food_monitor/internal/models"
)

type SignalSQLite struct {
	db *sql.DB
}

func NewSignalSQLite(db *sql.DB) *SignalSQLite {
	return &SignalSQLite{db: db}
}

const (
	signalStateRowID = 1

	upsertSignalSQL = `
		INSERT INTO signal_state (id, green, yellow, red, status, category, temperature, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			green=excluded.green,
			yellow=excluded.yellow,
			red=excluded.red,
			status=excluded.status,
			category=excluded.category,
			temperature=excluded.temperature,
			updated_at=excluded.updated_at
	`

	selectSignalSQL = `
		SELECT green, yellow, red, status, category, temperature, updated_at
		FROM signal_state WHERE id=?
	`
)

// Save replaces the signal_state row (id always 1) in one statement.
func (r *SignalSQLite) Save(ctx context.Context, s models.SignalState) error {
	ts := s.LastUpdate
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	var category sql.NullString
	if s.Category != nil {
		category = sql.NullString{String: *s.Category, Valid: true}
	}
	var temperature sql.NullFloat64
	if s.Temperature != nil {
		temperature = sql.NullFloat64{Float64: *s.Temperature, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, upsertSignalSQL,
		signalStateRowID,
		s.GreenOn,
		s.YellowOn,
		s.RedOn,
		string(s.Status),
		category,
		temperature,
		ts,
	); err != nil {
		return fmt.Errorf("upsert signal_state: %w", err)
	}
	return nil
}

// Load fetches the signal_state row, or nil if it was never written.
func (r *SignalSQLite) Load(ctx context.Context) (*models.SignalState, error) {
	row := r.db.QueryRowContext(ctx, selectSignalSQL, signalStateRowID)

	var (
		s           models.SignalState
		status      string
		category    sql.NullString
		temperature sql.NullFloat64
	)
	if err := row.Scan(
		&s.GreenOn,
		&s.YellowOn,
		&s.RedOn,
		&status,
		&category,
		&temperature,
		&s.LastUpdate,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select signal_state: %w", err)
	}

	s.Status = models.Status(status)
	if category.Valid {
		c := category.String
		s.Category = &c
	}
	if temperature.Valid {
		t := temperature.Float64
		s.Temperature = &t
	}
	s.LastUpdate = s.LastUpdate.UTC()
	return &s, nil
}

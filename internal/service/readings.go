package service

import (
	"context"
	"sync"
	"time"

	"food_monitor/internal/logger"
	"food_monitor/internal/models"

	"github.com/google/uuid"
)

// DefaultReadingCapacity is the buffer size when none is configured.
const DefaultReadingCapacity = 500

// Plausible sensor ranges. Samples outside are logged but still kept.
const (
	minPlausibleTemp  = -50.0
	maxPlausibleTemp  = 100.0
	minPlausibleHum   = 0.0
	maxPlausibleHum   = 100.0
	minPlausibleLight = 0
	maxPlausibleLight = 4095
)

// ReadingBuffer is a bounded in-memory ring of the most recent readings.
type ReadingBuffer struct {
	mu    sync.RWMutex
	buf   []models.SensorReading
	head  int // next write position
	count int
	log   *logger.Logger
	now   func() time.Time
}

func NewReadingBuffer(capacity int, log *logger.Logger) *ReadingBuffer {
	if capacity <= 0 {
		capacity = DefaultReadingCapacity
	}
	return &ReadingBuffer{
		buf: make([]models.SensorReading, capacity),
		log: log,
		now: time.Now,
	}
}

// Ingest stamps a sample and appends it, evicting the oldest when full.
func (b *ReadingBuffer) Ingest(_ context.Context, in ReadingInput) (models.SensorReading, error) {
	if in.Temperature == nil && in.Humidity == nil && in.LightLevel == nil {
		return models.SensorReading{}, ErrNoSensorValues
	}
	b.warnImplausible(in)

	r := models.SensorReading{
		ID:          uuid.NewString(),
		DeviceID:    in.DeviceID,
		Source:      in.Source,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		LightLevel:  in.LightLevel,
		Voltage:     in.Voltage,
		Timestamp:   b.now().UTC(),
	}

	b.mu.Lock()
	b.buf[b.head] = r
	b.head = (b.head + 1) % len(b.buf)
	if b.count < len(b.buf) {
		b.count++
	}
	total := b.count
	b.mu.Unlock()

	if b.log != nil {
		b.log.Debugw("sensor_reading_ingested", "id", r.ID, "device_id", r.DeviceID, "source", r.Source, "total", total)
	}
	return r, nil
}

// List returns a copy of the buffer, newest first.
func (b *ReadingBuffer) List(_ context.Context) []models.SensorReading {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.SensorReading, 0, b.count)
	for i := 0; i < b.count; i++ {
		out = append(out, b.at(i))
	}
	return out
}

// LatestTemperature returns the newest reading that carries a temperature.
// Count returns the number of buffered readings without copying them.
func (b *ReadingBuffer) Count(_ context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

func (b *ReadingBuffer) LatestTemperature(_ context.Context) (models.SensorReading, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := 0; i < b.count; i++ {
		if r := b.at(i); r.Temperature != nil {
			return r, true
		}
	}
	return models.SensorReading{}, false
}

func (b *ReadingBuffer) Stats(_ context.Context) models.ReadingStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	st := models.ReadingStats{TotalRecords: b.count, ServerTime: b.now().UTC()}
	if b.count == 0 {
		return st
	}
	latest, oldest := b.at(0), b.at(b.count-1)
	st.LatestRecord, st.OldestRecord = &latest, &oldest

	for i := 0; i < b.count; i++ {
		r := b.at(i)
		widen(&st.DataRange.Temperature, r.Temperature)
		widen(&st.DataRange.Humidity, r.Humidity)
		if r.LightLevel != nil {
			l := float64(*r.LightLevel)
			widen(&st.DataRange.Light, &l)
		}
	}
	return st
}

// at returns the i-th newest reading. Caller holds the lock.
func (b *ReadingBuffer) at(i int) models.SensorReading {
	idx := (b.head - 1 - i + 2*len(b.buf)) % len(b.buf)
	return b.buf[idx]
}

func (b *ReadingBuffer) warnImplausible(in ReadingInput) {
	if b.log == nil {
		return
	}
	if t := in.Temperature; t != nil && (*t < minPlausibleTemp || *t > maxPlausibleTemp) {
		b.log.Warnw("sensor_temperature_out_of_range", "device_id", in.DeviceID, "temperature", *t)
	}
	if h := in.Humidity; h != nil && (*h < minPlausibleHum || *h > maxPlausibleHum) {
		b.log.Warnw("sensor_humidity_out_of_range", "device_id", in.DeviceID, "humidity", *h)
	}
	if l := in.LightLevel; l != nil && (*l < minPlausibleLight || *l > maxPlausibleLight) {
		b.log.Warnw("sensor_light_out_of_range", "device_id", in.DeviceID, "light", *l)
	}
}

func widen(r *models.MetricRange, v *float64) {
	if v == nil {
		return
	}
	x := *v
	if r.Min == nil || x < *r.Min {
		m := x
		r.Min = &m
	}
	if r.Max == nil || x > *r.Max {
		m := x
		r.Max = &m
	}
}

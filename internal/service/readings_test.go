package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"food_monitor/internal/logger"
)

func TestReadingBuffer_IngestRejectsEmpty(t *testing.T) {
	t.Parallel()
	b := NewReadingBuffer(3, logger.Nop())
	_, err := b.Ingest(context.Background(), ReadingInput{DeviceID: "esp32-1", Voltage: fptr(3.3)})
	if !errors.Is(err, ErrNoSensorValues) {
		t.Fatalf("expected ErrNoSensorValues, got %v", err)
	}
	if n := len(b.List(context.Background())); n != 0 {
		t.Fatalf("expected empty buffer, got %d", n)
	}
}

func TestReadingBuffer_EvictsOldestAndListsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewReadingBuffer(3, logger.Nop())
	clock := fixedNow
	b.now = func() time.Time { return clock }

	for i := 1; i <= 5; i++ {
		clock = clock.Add(time.Second)
		r, err := b.Ingest(ctx, ReadingInput{Temperature: fptr(float64(i)), Source: "http"})
		if err != nil {
			t.Fatalf("ingest %d: %v", i, err)
		}
		if r.ID == "" {
			t.Fatal("expected generated id")
		}
	}

	got := b.List(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(got))
	}
	for i, want := range []float64{5, 4, 3} {
		if *got[i].Temperature != want {
			t.Errorf("reading %d temperature = %v, want %v", i, *got[i].Temperature, want)
		}
	}
}

func TestReadingBuffer_OutOfRangeStillStored(t *testing.T) {
	t.Parallel()
	b := NewReadingBuffer(0, logger.Nop())
	light := 5000
	if _, err := b.Ingest(context.Background(), ReadingInput{Temperature: fptr(150), LightLevel: &light}); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if n := len(b.List(context.Background())); n != 1 {
		t.Fatalf("expected 1 reading, got %d", n)
	}
	if len(b.buf) != DefaultReadingCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultReadingCapacity, len(b.buf))
	}
}

func TestReadingBuffer_LatestTemperature(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewReadingBuffer(5, logger.Nop())

	if _, ok := b.LatestTemperature(ctx); ok {
		t.Fatal("expected no reading on empty buffer")
	}
	_, _ = b.Ingest(ctx, ReadingInput{Temperature: fptr(4)})
	_, _ = b.Ingest(ctx, ReadingInput{Humidity: fptr(88)})

	r, ok := b.LatestTemperature(ctx)
	if !ok || *r.Temperature != 4 {
		t.Fatalf("expected latest temperature 4, got %+v ok=%v", r, ok)
	}
}

func TestReadingBuffer_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewReadingBuffer(5, logger.Nop())

	empty := b.Stats(ctx)
	if empty.TotalRecords != 0 || empty.LatestRecord != nil || empty.DataRange.Temperature.Min != nil {
		t.Fatalf("unexpected empty stats %+v", empty)
	}

	l1, l2 := 100, 3000
	_, _ = b.Ingest(ctx, ReadingInput{Temperature: fptr(2), Humidity: fptr(90), LightLevel: &l1})
	_, _ = b.Ingest(ctx, ReadingInput{Temperature: fptr(-1), LightLevel: &l2})
	_, _ = b.Ingest(ctx, ReadingInput{Humidity: fptr(70)})

	st := b.Stats(ctx)
	if st.TotalRecords != 3 {
		t.Fatalf("total = %d, want 3", st.TotalRecords)
	}
	if st.LatestRecord == nil || *st.LatestRecord.Humidity != 70 {
		t.Errorf("unexpected latest %+v", st.LatestRecord)
	}
	if st.OldestRecord == nil || *st.OldestRecord.Temperature != 2 {
		t.Errorf("unexpected oldest %+v", st.OldestRecord)
	}
	dr := st.DataRange
	if *dr.Temperature.Min != -1 || *dr.Temperature.Max != 2 {
		t.Errorf("temperature range = %v..%v", *dr.Temperature.Min, *dr.Temperature.Max)
	}
	if *dr.Humidity.Min != 70 || *dr.Humidity.Max != 90 {
		t.Errorf("humidity range = %v..%v", *dr.Humidity.Min, *dr.Humidity.Max)
	}
	if *dr.Light.Min != 100 || *dr.Light.Max != 3000 {
		t.Errorf("light range = %v..%v", *dr.Light.Min, *dr.Light.Max)
	}
}

func TestReadingBuffer_CountTracksEviction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b := NewReadingBuffer(2, logger.Nop())

	if got := b.Count(ctx); got != 0 {
		t.Fatalf("empty count = %d", got)
	}
	for i := 0; i < 3; i++ {
		_, _ = b.Ingest(ctx, ReadingInput{Temperature: fptr(float64(i))})
		want := i + 1
		if want > 2 {
			want = 2
		}
		if got := b.Count(ctx); got != want {
			t.Fatalf("after %d ingests count = %d, want %d", i+1, got, want)
		}
	}
	if got := b.Count(ctx); got != len(b.List(ctx)) || got != b.Stats(ctx).TotalRecords {
		t.Fatalf("count %d disagrees with list/stats", got)
	}
	if _, err := b.Ingest(ctx, ReadingInput{}); err == nil || b.Count(ctx) != 2 {
		t.Fatalf("rejected reading must not change count")
	}
}

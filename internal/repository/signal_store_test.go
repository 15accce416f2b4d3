package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"food_monitor/internal/models"
)

// flakySignalRepo is an in-memory SignalRepo with switchable failures.
type flakySignalRepo struct {
	mu        sync.Mutex
	state     *models.SignalState
	loadErr   error
	saveErr   error
	loadCalls int
	saveCalls int
}

func (r *flakySignalRepo) Save(ctx context.Context, s models.SignalState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	c := s.Clone()
	r.state = &c
	return nil
}

func (r *flakySignalRepo) Load(ctx context.Context) (*models.SignalState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadCalls++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.state == nil {
		return nil, nil
	}
	c := r.state.Clone()
	return &c, nil
}

func signalFor(status models.Status, category string, temp float64) models.SignalState {
	st := models.SignalState{
		Status:      status,
		Category:    &category,
		Temperature: &temp,
		LastUpdate:  time.Now().UTC(),
	}
	switch status {
	case models.StatusOptimal:
		st.GreenOn = true
	case models.StatusWarning, models.StatusTooCold:
		st.YellowOn = true
	case models.StatusCritical:
		st.RedOn = true
	}
	return st
}

func TestCachedSignalStore_DefaultIsUnknown(t *testing.T) {
	s := NewMemorySignalStore(nil)
	got := s.Read(context.Background())
	if got.Status != models.StatusUnknown || got.LitCount() != 0 {
		t.Fatalf("expected UNKNOWN all-off, got %+v", got)
	}
	if got.Category != nil || got.Temperature != nil {
		t.Fatalf("expected no category/temperature, got %+v", got)
	}
	if got.LastUpdate.IsZero() {
		t.Fatalf("expected lastUpdate to be set")
	}
}

func TestCachedSignalStore_MemoryWriteThenRead(t *testing.T) {
	s := NewMemorySignalStore(nil)
	want := signalFor(models.StatusWarning, "quesos_duros", 10)
	s.Write(context.Background(), want)

	got := s.Read(context.Background())
	if got.Status != models.StatusWarning || !got.YellowOn || *got.Category != "quesos_duros" {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestCachedSignalStore_ReadReturnsIndependentCopy(t *testing.T) {
	s := NewMemorySignalStore(nil)
	s.Write(context.Background(), signalFor(models.StatusOptimal, "carnes", 2))

	got := s.Read(context.Background())
	*got.Category = "mutated"
	*got.Temperature = 99

	again := s.Read(context.Background())
	if *again.Category != "carnes" || *again.Temperature != 2 {
		t.Fatalf("cache was mutated through a read: %+v", again)
	}
}

func TestCachedSignalStore_DurableAlwaysFailing(t *testing.T) {
	repo := &flakySignalRepo{loadErr: errors.New("unreachable"), saveErr: errors.New("unreachable")}
	s := NewSignalStore(repo, nil)
	ctx := context.Background()

	if got := s.Read(ctx); got.Status != models.StatusUnknown {
		t.Fatalf("expected UNKNOWN fallback, got %s", got.Status)
	}

	s.Write(ctx, signalFor(models.StatusCritical, "pescado", -6))
	got := s.Read(ctx)
	if got.Status != models.StatusCritical || !got.RedOn {
		t.Fatalf("expected last in-process value, got %+v", got)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("expected one durable write attempt, got %d", repo.saveCalls)
	}
}

func TestCachedSignalStore_CacheAuthoritativeAfterFailedWrite(t *testing.T) {
	old := signalFor(models.StatusOptimal, "carnes", 1)
	repo := &flakySignalRepo{state: &old}
	s := NewSignalStore(repo, nil)
	ctx := context.Background()

	repo.saveErr = errors.New("write timeout")
	s.Write(ctx, signalFor(models.StatusCritical, "carnes", 9))

	// The medium is readable again but holds the stale value.
	got := s.Read(ctx)
	if got.Status != models.StatusCritical {
		t.Fatalf("stale durable value leaked over newer cache: %+v", got)
	}
	if repo.loadCalls != 0 {
		t.Fatalf("expected no durable reads while cache is ahead, got %d", repo.loadCalls)
	}

	// A successful write resynchronizes.
	repo.saveErr = nil
	s.Write(ctx, signalFor(models.StatusWarning, "carnes", 5))
	got = s.Read(ctx)
	if got.Status != models.StatusWarning || repo.loadCalls != 1 {
		t.Fatalf("expected durable read after resync, got %+v (loads=%d)", got, repo.loadCalls)
	}
}

func TestCachedSignalStore_AdoptsDurableStateAfterRestart(t *testing.T) {
	persisted := signalFor(models.StatusTooCold, "lacteos", -0.5)
	repo := &flakySignalRepo{state: &persisted}

	// Fresh process: cache starts UNKNOWN, medium has a value.
	s := NewSignalStore(repo, nil)
	got := s.Read(context.Background())
	if got.Status != models.StatusTooCold || *got.Category != "lacteos" {
		t.Fatalf("expected persisted state, got %+v", got)
	}

	// Medium goes away: the adopted value is served from cache.
	repo.loadErr = errors.New("gone")
	got = s.Read(context.Background())
	if got.Status != models.StatusTooCold {
		t.Fatalf("expected cached persisted state, got %+v", got)
	}
}

func TestCachedSignalStore_WriteIgnoresCallerCancellation(t *testing.T) {
	repo := &flakySignalRepo{}
	s := NewSignalStore(repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Write(ctx, signalFor(models.StatusOptimal, "frutas", 2))

	if repo.state == nil || repo.state.Status != models.StatusOptimal {
		t.Fatalf("expected durable write despite cancelled caller, got %+v", repo.state)
	}
}

func TestCachedSignalStore_ConcurrentReadersSeeWholeRecords(t *testing.T) {
	s := NewSignalStore(&flakySignalRepo{}, nil)
	ctx := context.Background()
	states := []models.SignalState{
		signalFor(models.StatusOptimal, "carnes", 2),
		signalFor(models.StatusWarning, "carnes", 6),
		signalFor(models.StatusCritical, "carnes", 9),
		signalFor(models.StatusTooCold, "carnes", -3),
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Write(ctx, states[(i+w)%len(states)])
			}
		}(w)
	}
	errs := make(chan string, 8)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := s.Read(ctx)
				if got.Status != models.StatusUnknown && got.LitCount() != 1 {
					errs <- "inconsistent LEDs for " + string(got.Status)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatal(e)
	}
}

func TestCachedSignalStore_LastWriteWins(t *testing.T) {
	s := NewMemorySignalStore(nil)
	ctx := context.Background()
	s.Write(ctx, signalFor(models.StatusOptimal, "carnes", 2))
	s.Write(ctx, signalFor(models.StatusCritical, "pollo", 9))

	got := s.Read(ctx)
	if got.Status != models.StatusCritical || *got.Category != "pollo" || *got.Temperature != 9 {
		t.Fatalf("expected second write, got %+v", got)
	}
}

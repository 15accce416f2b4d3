package service

import (
	"context"
	"math"
	"strings"
	"time"

	"food_monitor/internal/foods"
	"food_monitor/internal/logger"
	"food_monitor/internal/models"
	"food_monitor/internal/repository"
)

type SignalService struct {
	store repository.SignalStore
	log   *logger.Logger
	now   func() time.Time
}

func NewSignalService(store repository.SignalStore, log *logger.Logger) *SignalService {
	return &SignalService{store: store, log: log, now: time.Now}
}

// Select validates the input, classifies it and replaces the stored state.
// Nothing is written when validation fails.
func (s *SignalService) Select(ctx context.Context, p SelectParams) (SelectResult, error) {
	profile, ok := foods.Lookup(strings.TrimSpace(p.Category))
	if !ok {
		return SelectResult{}, ErrUnknownCategory
	}
	if p.Temperature == nil || math.IsNaN(*p.Temperature) || math.IsInf(*p.Temperature, 0) {
		return SelectResult{}, ErrTemperatureRequired
	}

	st := foods.Signal(profile, *p.Temperature, s.now())
	s.store.Write(ctx, st)

	if s.log != nil {
		s.log.Infow("signal_selected",
			"category", profile.Category,
			"temperature", *p.Temperature,
			"status", st.Status,
		)
	}
	return SelectResult{State: st.Clone(), Ranges: foods.Ranges(profile)}, nil
}

// Current returns the stored state as is.
func (s *SignalService) Current(ctx context.Context) models.SignalState {
	return s.store.Read(ctx)
}

// CurrentForDevice never panics and never returns an absent payload.
func (s *SignalService) CurrentForDevice(ctx context.Context) (out models.DeviceSignal) {
	defer func() {
		if r := recover(); r != nil {
			if s.log != nil {
				s.log.Errorw("signal_device_read_panic", "panic", r)
			}
			out = models.ErrorDeviceSignal(s.now())
		}
	}()

	st := s.store.Read(ctx)
	if st.LitCount() > 1 {
		if s.log != nil {
			s.log.Errorw("signal_invalid_led_state", "status", st.Status, "lit", st.LitCount())
		}
		return models.ErrorDeviceSignal(s.now())
	}
	return st.Device()
}

package foods

import (
	"fmt"
	"time"

	"food_monitor/internal/models"
)

// FreezeMargin is how far below TempMin a sample may fall before it is
// escalated from TOO_COLD to CRITICAL. Uniform across profiles.
const FreezeMargin = 3.0

// Classify maps a temperature sample to a status. Rules are evaluated in
// order and the first match wins.
func Classify(p models.FoodProfile, temp float64) models.Status {
	switch {
	case temp >= p.TempMin && temp <= p.TempMax:
		return models.StatusOptimal
	case temp > p.TempMax && temp <= p.CriticalTemp:
		return models.StatusWarning
	case temp > p.CriticalTemp || temp < p.TempMin-FreezeMargin:
		return models.StatusCritical
	default:
		return models.StatusTooCold
	}
}

// Signal builds the persisted state for a classified sample.
// Exactly one LED is lit for every classifier status.
func Signal(p models.FoodProfile, temp float64, now time.Time) models.SignalState {
	status := Classify(p, temp)
	category := p.Category
	st := models.SignalState{
		Status:      status,
		Category:    &category,
		Temperature: &temp,
		LastUpdate:  now.UTC(),
	}
	switch status {
	case models.StatusOptimal:
		st.GreenOn = true
	case models.StatusWarning, models.StatusTooCold:
		st.YellowOn = true
	case models.StatusCritical:
		st.RedOn = true
	}
	if st.LitCount() != 1 {
		panic(fmt.Sprintf("foods: status %s lit %d LEDs", status, st.LitCount()))
	}
	return st
}

package foods

import (
	"math"
	"testing"
	"time"

	"food_monitor/internal/models"
)

func mustLookup(t *testing.T, category string) models.FoodProfile {
	t.Helper()
	p, ok := Lookup(category)
	if !ok {
		t.Fatalf("profile %q not found", category)
	}
	return p
}

func TestClassify_RedMeatBoundaries(t *testing.T) {
	p := mustLookup(t, "carnes")

	cases := []struct {
		temp float64
		want models.Status
	}{
		{-2, models.StatusOptimal},
		{4, models.StatusOptimal},
		{4.01, models.StatusWarning},
		{7, models.StatusWarning},
		{7.01, models.StatusCritical},
		{-2.5, models.StatusTooCold},
		{-5, models.StatusTooCold},
		{-5.01, models.StatusCritical},
	}
	for _, tc := range cases {
		if got := Classify(p, tc.temp); got != tc.want {
			t.Errorf("Classify(carnes, %v) = %s, want %s", tc.temp, got, tc.want)
		}
	}
}

func TestClassify_Scenarios(t *testing.T) {
	if got := Classify(mustLookup(t, "quesos_duros"), 10); got != models.StatusWarning {
		t.Fatalf("hard cheese at 10°C: got %s, want WARNING", got)
	}
	if got := Classify(mustLookup(t, "pescado"), -6); got != models.StatusCritical {
		t.Fatalf("fish at -6°C: got %s, want CRITICAL", got)
	}
}

func TestClassify_ExhaustiveOverAllProfiles(t *testing.T) {
	valid := map[models.Status]bool{
		models.StatusOptimal:  true,
		models.StatusWarning:  true,
		models.StatusCritical: true,
		models.StatusTooCold:  true,
	}
	now := time.Now()
	for _, p := range All() {
		for temp := -20.0; temp <= 25.0; temp += 0.25 {
			status := Classify(p, temp)
			if !valid[status] {
				t.Fatalf("%s at %v: unexpected status %q", p.Category, temp, status)
			}
			st := Signal(p, temp, now)
			if st.LitCount() != 1 {
				t.Fatalf("%s at %v: %d LEDs lit", p.Category, temp, st.LitCount())
			}
		}
	}
}

func TestClassify_InfinitiesAreCritical(t *testing.T) {
	p := mustLookup(t, "frutas")
	if got := Classify(p, math.Inf(1)); got != models.StatusCritical {
		t.Fatalf("+Inf: got %s", got)
	}
	if got := Classify(p, math.Inf(-1)); got != models.StatusCritical {
		t.Fatalf("-Inf: got %s", got)
	}
}

func TestSignal_LEDMapping(t *testing.T) {
	p := mustLookup(t, "carnes")
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))

	cases := []struct {
		name               string
		temp               float64
		green, yellow, red bool
		status             models.Status
	}{
		{"optimal_green", 2, true, false, false, models.StatusOptimal},
		{"warning_yellow", 6, false, true, false, models.StatusWarning},
		{"too_cold_yellow", -3, false, true, false, models.StatusTooCold},
		{"critical_red", 9, false, false, true, models.StatusCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := Signal(p, tc.temp, now)
			if st.GreenOn != tc.green || st.YellowOn != tc.yellow || st.RedOn != tc.red {
				t.Fatalf("LEDs = %v/%v/%v", st.GreenOn, st.YellowOn, st.RedOn)
			}
			if st.Status != tc.status {
				t.Fatalf("status = %s, want %s", st.Status, tc.status)
			}
			if st.Category == nil || *st.Category != "carnes" {
				t.Fatalf("category not set: %v", st.Category)
			}
			if st.Temperature == nil || *st.Temperature != tc.temp {
				t.Fatalf("temperature not set: %v", st.Temperature)
			}
			if st.LastUpdate.Location() != time.UTC || !st.LastUpdate.Equal(now) {
				t.Fatalf("lastUpdate = %v", st.LastUpdate)
			}
		})
	}
}

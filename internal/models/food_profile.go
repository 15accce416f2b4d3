package models

// FoodProfile describes the storage band for one food category.
// Profiles are built once at startup and shared read-only.
type FoodProfile struct {
	Category     string  `json:"category"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ShelfLife    string  `json:"shelfLife"`
	TempMin      float64 `json:"tempMin"`      // °C, inclusive
	TempMax      float64 `json:"tempMax"`      // °C, inclusive
	CriticalTemp float64 `json:"criticalTemp"` // °C, critical strictly above
	HumidityMin  float64 `json:"humidityMin"`  // %
	HumidityMax  float64 `json:"humidityMax"`  // %
}

// Ranges is the human-readable band summary returned with a selection.
type Ranges struct {
	Optimal  string `json:"optimal"`
	Critical string `json:"critical"`
}

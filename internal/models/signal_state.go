package models

import "time"

// Status is the externally visible signal status.
type Status string

const (
	StatusOptimal  Status = "OPTIMAL"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
	StatusTooCold  Status = "TOO_COLD"
	StatusUnknown  Status = "UNKNOWN"
	// StatusError only appears in the device read fault path; it is never persisted.
	StatusError Status = "ERROR"
)

// SignalState is the single persisted traffic-light record.
type SignalState struct {
	GreenOn     bool      `json:"green"`
	YellowOn    bool      `json:"yellow"`
	RedOn       bool      `json:"red"`
	Status      Status    `json:"status"`
	Category    *string   `json:"category"`    // nil until a category is selected
	Temperature *float64  `json:"temperature"` // °C, nil until a category is selected
	LastUpdate  time.Time `json:"lastUpdate"`
}

// UnknownSignal returns the initial state: no selection, all LEDs off.
func UnknownSignal(now time.Time) SignalState {
	return SignalState{Status: StatusUnknown, LastUpdate: now.UTC()}
}

// LitCount returns how many LEDs are on. Valid states have at most one.
func (s SignalState) LitCount() int {
	n := 0
	for _, on := range []bool{s.GreenOn, s.YellowOn, s.RedOn} {
		if on {
			n++
		}
	}
	return n
}

// DeviceSignal is the flat payload for constrained polling clients.
type DeviceSignal struct {
	Green       int       `json:"green"`
	Yellow      int       `json:"yellow"`
	Red         int       `json:"red"`
	Status      Status    `json:"status"`
	LastUpdate  time.Time `json:"lastUpdate"`
	Category    *string   `json:"category"`
	Temperature *float64  `json:"temperature"`
}

// Device flattens the state to the 0/1 encoding.
func (s SignalState) Device() DeviceSignal {
	return DeviceSignal{
		Green:       boolToInt(s.GreenOn),
		Yellow:      boolToInt(s.YellowOn),
		Red:         boolToInt(s.RedOn),
		Status:      s.Status,
		LastUpdate:  s.LastUpdate,
		Category:    s.Category,
		Temperature: s.Temperature,
	}
}

// ErrorDeviceSignal is the safe all-off payload served when the read path faults.
func ErrorDeviceSignal(now time.Time) DeviceSignal {
	return DeviceSignal{Status: StatusError, LastUpdate: now.UTC()}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Clone returns a copy that shares no pointers with s.
func (s SignalState) Clone() SignalState {
	out := s
	if s.Category != nil {
		c := *s.Category
		out.Category = &c
	}
	if s.Temperature != nil {
		t := *s.Temperature
		out.Temperature = &t
	}
	return out
}

package models

import "time"

// SensorReading is one sample pushed by the sensor device.
// Any metric may be absent.
type SensorReading struct {
	ID          string    `json:"id"`
	DeviceID    string    `json:"deviceId,omitempty"`
	Source      string    `json:"source"` // http | mqtt
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	LightLevel  *int      `json:"lightLevel"`
	Voltage     *float64  `json:"voltage"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetricRange holds min/max for one metric; nil when no sample carried it.
type MetricRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// ReadingStats summarizes the buffered readings.
type ReadingStats struct {
	TotalRecords int            `json:"totalRecords"`
	LatestRecord *SensorReading `json:"latestRecord"`
	OldestRecord *SensorReading `json:"oldestRecord"`
	DataRange    struct {
		Temperature MetricRange `json:"temperature"`
		Humidity    MetricRange `json:"humidity"`
		Light       MetricRange `json:"light"`
	} `json:"dataRange"`
	ServerTime time.Time `json:"serverTime"`
}

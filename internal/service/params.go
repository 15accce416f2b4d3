package service

import (
	"errors"

	"food_monitor/internal/models"
)

// Input errors. Handlers map these to 400.
var (
	ErrUnknownCategory     = errors.New("unrecognized category")
	ErrTemperatureRequired = errors.New("temperature required")
	ErrNoSensorValues      = errors.New("no valid sensor values: expected temperature, humidity or light")
	ErrNoReadings          = errors.New("no sensor data to analyze")
)

type SelectParams struct {
	Category    string
	Temperature *float64 // °C; nil when the caller sent none
}

type SelectResult struct {
	State  models.SignalState
	Ranges models.Ranges
}

// ReadingInput is one raw sample before it is stamped and buffered.
type ReadingInput struct {
	DeviceID    string
	Source      string // http | mqtt
	Temperature *float64
	Humidity    *float64
	LightLevel  *int
	Voltage     *float64
}

type FoodCheckParams struct {
	Category    string
	Temperature *float64
	Humidity    *float64
	Duration    string // free text, e.g. "3 horas"
}

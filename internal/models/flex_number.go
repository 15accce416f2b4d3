package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber accepts a JSON number or a numeric string. Anything else
// (null, "", "abc", "NaN", true, objects) leaves it unset, so callers
// decide whether a missing value is an error.
type FlexNumber struct {
	value float64
	set   bool
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	*n = FlexNumber{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	var v float64
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		v = parsed
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// Out-of-range literals such as 1e400 fail here.
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
	default:
		return nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.value, n.set = v, true
	return nil
}

// Ptr returns nil when unset.
func (n FlexNumber) Ptr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// IntPtr truncates toward zero. Values outside the int range are treated as unset.
func (n FlexNumber) IntPtr() *int {
	if !n.set || n.value < minIntFloat || n.value >= maxIntFloat {
		return nil
	}
	v := int(n.value)
	return &v
}

// Bounds for float64 to int conversion; maxIntFloat is itself out of range.
const (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = -minIntFloat
)

// FirstSet returns the first set value among aliases.
func FirstSet(aliases ...FlexNumber) FlexNumber {
	for _, a := range aliases {
		if a.set {
			return a
		}
	}
	return FlexNumber{}
}

// SensorPayload is the sensor message body shared by HTTP and MQTT.
// Spanish and English field names are both accepted; the Spanish one wins.
type SensorPayload struct {
	DeviceID string `json:"deviceId,omitempty" example:"esp32-cocina"`

	Temperatura FlexNumber `json:"temperatura" swaggertype:"number"`
	Temperature FlexNumber `json:"temperature" swaggertype:"number" example:"4.2"`
	Temp        FlexNumber `json:"temp" swaggertype:"number"`

	Humedad  FlexNumber `json:"humedad" swaggertype:"number"`
	Humidity FlexNumber `json:"humidity" swaggertype:"number" example:"88"`
	Hum      FlexNumber `json:"hum" swaggertype:"number"`

	Luz        FlexNumber `json:"luz" swaggertype:"integer"`
	Light      FlexNumber `json:"light" swaggertype:"integer"`
	LightLevel FlexNumber `json:"lightLevel" swaggertype:"integer" example:"1800"`

	Voltaje FlexNumber `json:"voltaje" swaggertype:"number"`
	Voltage FlexNumber `json:"voltage" swaggertype:"number" example:"3.3"`
}

func (p SensorPayload) TemperatureValue() *float64 {
	return FirstSet(p.Temperatura, p.Temperature, p.Temp).Ptr()
}

func (p SensorPayload) HumidityValue() *float64 {
	return FirstSet(p.Humedad, p.Humidity, p.Hum).Ptr()
}

func (p SensorPayload) LightValue() *int {
	return FirstSet(p.Luz, p.Light, p.LightLevel).IntPtr()
}

func (p SensorPayload) VoltageValue() *float64 {
	return FirstSet(p.Voltaje, p.Voltage).Ptr()
}

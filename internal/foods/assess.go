package foods

import (
	"fmt"

	"food_monitor/internal/models"
)

const (
	SeveritySafe     = "safe"
	SeverityWarning  = "warning"
	SeverityDanger   = "danger"
	SeverityCritical = "critical"

	HumidityLow     = "LOW"
	HumidityHigh    = "HIGH"
	HumidityOptimal = "OPTIMAL"

	// humidityAlertMargin is how far above HumidityMax a reading raises an alert.
	humidityAlertMargin = 5.0
)

// Assess wraps Classify with a severity and a readable message.
func Assess(p models.FoodProfile, temp float64) models.TemperatureAssessment {
	status := Classify(p, temp)
	a := models.TemperatureAssessment{Status: status}
	switch status {
	case models.StatusOptimal:
		a.Severity = SeveritySafe
		a.Message = fmt.Sprintf("Temperatura óptima (%s°C). Condiciones ideales de conservación.", formatTemp(temp))
	case models.StatusWarning:
		a.Severity = SeverityDanger
		a.Message = fmt.Sprintf("Temperatura alta (%s°C). Reducción de vida útil.", formatTemp(temp))
	case models.StatusTooCold:
		a.Severity = SeverityWarning
		a.Message = fmt.Sprintf("Temperatura muy baja (%s°C). Riesgo de congelación.", formatTemp(temp))
	case models.StatusCritical:
		a.Severity = SeverityCritical
		if temp > p.CriticalTemp {
			a.Message = fmt.Sprintf("¡TEMPERATURA CRÍTICA! (%s°C). Riesgo de descomposición inmediata.", formatTemp(temp))
		} else {
			a.Message = fmt.Sprintf("¡TEMPERATURA CRÍTICA! (%s°C). Congelación del producto.", formatTemp(temp))
		}
	}
	return a
}

// AnalyzeHumidity compares a humidity sample against the profile band.
func AnalyzeHumidity(p models.FoodProfile, humidity float64) models.HumidityAssessment {
	switch {
	case humidity < p.HumidityMin:
		return models.HumidityAssessment{
			Status:   HumidityLow,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Humedad baja (%s%%). Riesgo de deshidratación.", formatTemp(humidity)),
		}
	case humidity > p.HumidityMax:
		return models.HumidityAssessment{
			Status:   HumidityHigh,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Humedad alta (%s%%). Riesgo de crecimiento bacteriano.", formatTemp(humidity)),
		}
	default:
		return models.HumidityAssessment{
			Status:   HumidityOptimal,
			Severity: SeveritySafe,
			Message:  fmt.Sprintf("Humedad óptima (%s%%). Condiciones ideales.", formatTemp(humidity)),
		}
	}
}

// Alerts lists the actionable conditions for a sample, highest priority first.
// humidity may be nil when the sensor did not report it.
func Alerts(p models.FoodProfile, temp float64, humidity *float64) []models.Alert {
	alerts := make([]models.Alert, 0, 2)
	if temp > p.CriticalTemp {
		alerts = append(alerts, models.Alert{
			Type:     string(models.StatusCritical),
			Message:  fmt.Sprintf("ALERTA CRÍTICA: Temperatura %s°C excede límite seguro para %s", formatTemp(temp), p.Name),
			Action:   "Reducir temperatura inmediatamente",
			Priority: 1,
		})
	}
	if temp > p.TempMax && temp <= p.CriticalTemp {
		alerts = append(alerts, models.Alert{
			Type:     string(models.StatusWarning),
			Message:  fmt.Sprintf("Temperatura %s°C por encima del rango óptimo", formatTemp(temp)),
			Action:   "Ajustar refrigeración",
			Priority: 2,
		})
	}
	if humidity != nil && *humidity > p.HumidityMax+humidityAlertMargin {
		alerts = append(alerts, models.Alert{
			Type:     string(models.StatusWarning),
			Message:  fmt.Sprintf("Humedad alta %s%% puede causar deterioro", formatTemp(*humidity)),
			Action:   "Verificar ventilación",
			Priority: 3,
		})
	}
	return alerts
}

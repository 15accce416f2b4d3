package handlers

import (
	"net/http"
	"strings"

	"food_monitor/internal/models"
	"food_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// SensorReadingRequest is the sensor payload. Values may be numbers or numeric strings.
type SensorReadingRequest struct {
	models.SensorPayload
}

// Input resolves aliases into a service input.
func (r SensorReadingRequest) Input(source string) service.ReadingInput {
	return service.ReadingInput{
		DeviceID:    strings.TrimSpace(r.DeviceID),
		Source:      source,
		Temperature: r.TemperatureValue(),
		Humidity:    r.HumidityValue(),
		LightLevel:  r.LightValue(),
		Voltage:     r.VoltageValue(),
	}
}

// @Summary      Ingest a sensor reading
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      SensorReadingRequest  true  "Reading"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/sensor-data [post]
func (h *Handler) ingestReading(c *gin.Context) {
	var req SensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	r, err := h.services.Ingest(c.Request.Context(), req.Input("http"))
	if err != nil {
		h.inputError(c, "sensor_reading_rejected", err, "device_id", req.DeviceID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Datos recibidos correctamente",
		"data":         r,
		"totalRecords": h.services.Count(c.Request.Context()),
	})
}

// @Summary      Recent sensor readings
// @Description  Newest first.
// @Tags         sensors
// @Produce      json
// @Success      200  {array}  models.SensorReading
// @Router       /api/sensor-data [get]
func (h *Handler) listReadings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.List(c.Request.Context()))
}

// @Summary      Sensor buffer statistics
// @Tags         sensors
// @Produce      json
// @Success      200  {object}  models.ReadingStats
// @Router       /api/sensor-data [put]
func (h *Handler) readingStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats(c.Request.Context()))
}

package handlers

import (
	"net/http"

	"food_monitor/internal/models"
	"food_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// FoodMonitorRequest is the body of POST /api/food-monitor.
type FoodMonitorRequest struct {
	FoodType        string            `json:"foodType" example:"pollo"`
	Category        string            `json:"category,omitempty"`
	CurrentTemp     models.FlexNumber `json:"currentTemp" swaggertype:"number" example:"5"`
	CurrentHumidity models.FlexNumber `json:"currentHumidity" swaggertype:"number" example:"90"`
	Duration        string            `json:"duration,omitempty" example:"3 horas"`
}

// AnalyzeRequest is the body of POST /api/analyze. An empty body analyzes the buffer.
type AnalyzeRequest struct {
	SensorData []models.SensorReading `json:"sensorData"`
}

// @Summary      Food condition report
// @Description  Temperature and humidity assessment with an LLM opinion. Does not change the signal.
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        body  body      FoodMonitorRequest  true  "Conditions"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/food-monitor [post]
func (h *Handler) foodMonitor(c *gin.Context) {
	var req FoodMonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	category := req.FoodType
	if category == "" {
		category = req.Category
	}

	rep, err := h.services.FoodReport(c.Request.Context(), service.FoodCheckParams{
		Category:    category,
		Temperature: req.CurrentTemp.Ptr(),
		Humidity:    req.CurrentHumidity.Ptr(),
		Duration:    req.Duration,
	})
	if err != nil {
		h.inputError(c, "food_monitor_rejected", err, "category", category)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": rep})
}

// @Summary      Analyze sensor readings
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      AnalyzeRequest  false  "Readings"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/analyze [post]
func (h *Handler) analyzeSensors(c *gin.Context) {
	var req AnalyzeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}
	}
	out, err := h.services.AnalyzeSensors(c.Request.Context(), req.SensorData)
	if err != nil {
		h.inputError(c, "sensor_analysis_rejected", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": out})
}

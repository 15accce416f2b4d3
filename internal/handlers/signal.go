package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"food_monitor/internal/models"
	"food_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errInternal        = "internal server error"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// inputError maps service validation errors to 400; everything else is 500.
func (h *Handler) inputError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrTemperatureRequired),
		errors.Is(err, service.ErrNoSensorValues),
		errors.Is(err, service.ErrNoReadings):
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

// SelectSignalRequest is the body of POST /api/led-control.
// foodType is accepted as an alias of category.
type SelectSignalRequest struct {
	Category    string            `json:"category" example:"carnes"`
	FoodType    string            `json:"foodType,omitempty" example:"carnes"`
	Temperature models.FlexNumber `json:"temperature" swaggertype:"number" example:"3.5"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Select food category and temperature
// @Description  Classifies the temperature against the category and replaces the stored signal.
// @Tags         signal
// @Accept       json
// @Produce      json
// @Param        body  body      SelectSignalRequest  true  "Selection"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/led-control [post]
func (h *Handler) selectSignal(c *gin.Context) {
	var req SelectSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	category := req.Category
	if category == "" {
		category = req.FoodType
	}

	res, err := h.services.Select(c.Request.Context(), service.SelectParams{
		Category:    category,
		Temperature: req.Temperature.Ptr(),
	})
	if err != nil {
		h.inputError(c, "signal_select_rejected", err, "category", category)
		return
	}

	st := res.State
	resp := richSignal(st)
	resp["message"] = fmt.Sprintf("LEDs actualizados para %s a %g°C", *st.Category, *st.Temperature)
	resp["ranges"] = res.Ranges
	c.JSON(http.StatusOK, resp)
}

// @Summary      Current signal
// @Tags         signal
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/led-control [get]
func (h *Handler) currentSignal(c *gin.Context) {
	c.JSON(http.StatusOK, richSignal(h.services.Current(c.Request.Context())))
}

// @Summary      Current signal for devices
// @Description  Flat 0/1 payload. Always 200; on internal fault all LEDs are off and status is ERROR.
// @Tags         signal
// @Produce      json
// @Success      200  {object}  models.DeviceSignal
// @Router       /api/led-control/device [get]
// @Router       /api/led-control [put]
func (h *Handler) deviceSignal(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.CurrentForDevice(c.Request.Context()))
}

// richSignal merges the nested state with the flat device encoding.
func richSignal(st models.SignalState) gin.H {
	d := st.Device()
	return gin.H{
		"success":     true,
		"state":       st,
		"green":       d.Green,
		"yellow":      d.Yellow,
		"red":         d.Red,
		"status":      d.Status,
		"category":    d.Category,
		"temperature": d.Temperature,
		"lastUpdate":  d.LastUpdate,
	}
}

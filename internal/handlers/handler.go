package handlers

import (
	"food_monitor/internal/logger"
	"food_monitor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Signal stream for dashboards, same port.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		h.registerSignalRoutes(api)
		h.registerSensorRoutes(api)
		h.registerFoodRoutes(api)
	}
}

func (h *Handler) registerSignalRoutes(api *gin.RouterGroup) {
	led := api.Group("/led-control")
	{
		// Body example: {"category":"carnes","temperature":3.5}
		led.POST("", h.selectSignal)
		led.GET("", h.currentSignal)
		// PUT is kept for firmware that polls with PUT.
		led.PUT("", h.deviceSignal)
		led.GET("/device", h.deviceSignal)
	}
}

func (h *Handler) registerSensorRoutes(api *gin.RouterGroup) {
	sensors := api.Group("/sensor-data")
	{
		sensors.POST("", h.ingestReading)
		sensors.GET("", h.listReadings)
		sensors.PUT("", h.readingStats)
	}
	api.POST("/analyze", h.analyzeSensors)
}

func (h *Handler) registerFoodRoutes(api *gin.RouterGroup) {
	api.GET("/foods", h.listFoods)
	api.POST("/food-monitor", h.foodMonitor)
}

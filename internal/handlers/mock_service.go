package handlers

import (
	"context"
	"time"

	"food_monitor/internal/models"
	"food_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockSignal struct {
	selectRes   service.SelectResult
	selectErr   error
	lastSelect  service.SelectParams
	selectCalls int

	current models.SignalState
	device  models.DeviceSignal
}

func (m *mockSignal) Select(ctx context.Context, p service.SelectParams) (service.SelectResult, error) {
	m.selectCalls++
	m.lastSelect = p
	return m.selectRes, m.selectErr
}
func (m *mockSignal) Current(ctx context.Context) models.SignalState {
	return m.current
}
func (m *mockSignal) CurrentForDevice(ctx context.Context) models.DeviceSignal {
	return m.device
}

type mockReadings struct {
	ingestErr  error
	lastIngest service.ReadingInput
	list       []models.SensorReading
	listCalls  int
	stats      models.ReadingStats
}

func (m *mockReadings) Ingest(ctx context.Context, in service.ReadingInput) (models.SensorReading, error) {
	m.lastIngest = in
	if m.ingestErr != nil {
		return models.SensorReading{}, m.ingestErr
	}
	r := models.SensorReading{ID: "r-1", Source: in.Source, Temperature: in.Temperature, Timestamp: time.Now().UTC()}
	m.list = append([]models.SensorReading{r}, m.list...)
	return r, nil
}
func (m *mockReadings) List(ctx context.Context) []models.SensorReading {
	m.listCalls++
	return m.list
}
func (m *mockReadings) Count(ctx context.Context) int { return len(m.list) }
func (m *mockReadings) LatestTemperature(ctx context.Context) (models.SensorReading, bool) {
	for _, r := range m.list {
		if r.Temperature != nil {
			return r, true
		}
	}
	return models.SensorReading{}, false
}
func (m *mockReadings) Stats(ctx context.Context) models.ReadingStats { return m.stats }

type mockAnalysis struct {
	report       models.FoodReport
	reportErr    error
	lastFood     service.FoodCheckParams
	sensors      models.SensorAnalysis
	sensorsErr   error
	lastReadings []models.SensorReading
}

func (m *mockAnalysis) FoodReport(ctx context.Context, p service.FoodCheckParams) (models.FoodReport, error) {
	m.lastFood = p
	return m.report, m.reportErr
}
func (m *mockAnalysis) AnalyzeSensors(ctx context.Context, rs []models.SensorReading) (models.SensorAnalysis, error) {
	m.lastReadings = rs
	return m.sensors, m.sensorsErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"food_monitor/internal/foods"
	"food_monitor/internal/logger"
	"food_monitor/internal/models"
)

const (
	defaultLLMTimeout = 15 * time.Second

	foodAnalysisMaxTokens   = 800
	sensorAnalysisMaxTokens = 1000

	// maxAnalyzedReadings caps how many buffered readings go into one prompt.
	maxAnalyzedReadings = 20
)

type AnalysisService struct {
	gen      TextGenerator
	model    ModelConfig
	timeout  time.Duration
	readings Readings
	log      *logger.Logger
}

func NewAnalysisService(gen TextGenerator, model ModelConfig, timeout time.Duration, readings Readings, log *logger.Logger) *AnalysisService {
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	// A typed nil *OpenAIGenerator must not reach the interface as non-nil.
	if g, ok := gen.(*OpenAIGenerator); ok && g == nil {
		gen = nil
	}
	return &AnalysisService{gen: gen, model: model, timeout: timeout, readings: readings, log: log}
}

// FoodReport evaluates one sample against a profile. It never writes the signal.
func (a *AnalysisService) FoodReport(ctx context.Context, p FoodCheckParams) (models.FoodReport, error) {
	profile, ok := foods.Lookup(strings.TrimSpace(p.Category))
	if !ok {
		return models.FoodReport{}, ErrUnknownCategory
	}
	if p.Temperature == nil {
		return models.FoodReport{}, ErrTemperatureRequired
	}
	temp := *p.Temperature

	var rep models.FoodReport
	rep.Food = profile.Name
	rep.Category = profile.Category
	rep.CurrentConditions.Temperature = temp
	rep.CurrentConditions.Humidity = p.Humidity
	rep.RecommendedConditions.TemperatureRange = foods.Ranges(profile).Optimal
	rep.RecommendedConditions.HumidityRange = fmt.Sprintf("%g%% - %g%%", profile.HumidityMin, profile.HumidityMax)
	rep.RecommendedConditions.ShelfLife = profile.ShelfLife
	rep.Status = foods.Assess(profile, temp)
	if p.Humidity != nil {
		h := foods.AnalyzeHumidity(profile, *p.Humidity)
		rep.HumidityStatus = &h
	}
	rep.Alerts = foods.Alerts(profile, temp, p.Humidity)
	rep.AIAnalysis = a.foodAI(ctx, profile, p, rep.Status)
	return rep, nil
}

func (a *AnalysisService) foodAI(ctx context.Context, profile models.FoodProfile, p FoodCheckParams, st models.TemperatureAssessment) models.FoodAIAnalysis {
	text, err := a.generate(ctx, foodPrompt(profile, p, st), foodAnalysisMaxTokens)
	if err != nil {
		return fallbackFoodAnalysis(st)
	}
	var out models.FoodAIAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		if a.log != nil {
			a.log.Warnw("llm_food_analysis_unparsable", "category", profile.Category, "err", err)
		}
		return fallbackFoodAnalysis(st)
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	return out
}

// AnalyzeSensors summarizes readings. When readings is empty the buffer is used.
func (a *AnalysisService) AnalyzeSensors(ctx context.Context, readings []models.SensorReading) (models.SensorAnalysis, error) {
	if len(readings) == 0 && a.readings != nil {
		readings = a.readings.List(ctx)
	}
	if len(readings) == 0 {
		return models.SensorAnalysis{}, ErrNoReadings
	}
	if len(readings) > maxAnalyzedReadings {
		readings = readings[:maxAnalyzedReadings]
	}

	prompt, err := sensorPrompt(readings)
	if err != nil {
		return fallbackSensorAnalysis(), nil
	}
	text, err := a.generate(ctx, prompt, sensorAnalysisMaxTokens)
	if err != nil {
		return fallbackSensorAnalysis(), nil
	}

	var out models.SensorAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &out); err != nil {
		if a.log != nil {
			a.log.Warnw("llm_sensor_analysis_unparsable", "err", err)
		}
		out = unparsableSensorAnalysis(text)
	}
	if out.Summary == "" {
		out.Summary = "Análisis completado"
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	if out.Alerts == nil {
		out.Alerts = []string{}
	}
	return out, nil
}

func (a *AnalysisService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if a.gen == nil {
		return "", errNoGenerator
	}
	cfg := a.model
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = maxTokens
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.gen.Generate(ctx, prompt, cfg)
	if err != nil && a.log != nil {
		a.log.Warnw("llm_generate_failed", "model", cfg.Model, "err", err)
	}
	return text, err
}

func foodPrompt(p models.FoodProfile, in FoodCheckParams, st models.TemperatureAssessment) string {
	humidity := "No disponible"
	if in.Humidity != nil {
		humidity = fmt.Sprintf("%g%%", *in.Humidity)
	}
	duration := in.Duration
	if duration == "" {
		duration = "No especificado"
	}
	return fmt.Sprintf(`Eres un experto en conservación de alimentos y seguridad alimentaria. Analiza las siguientes condiciones:

ALIMENTO: %s (%s)
TEMPERATURA ACTUAL: %g°C
HUMEDAD ACTUAL: %s
TIEMPO EN ESTAS CONDICIONES: %s
RANGO ÓPTIMO: %g°C a %g°C
HUMEDAD ÓPTIMA: %g%% a %g%%
VIDA ÚTIL ESPERADA: %s
ESTADO ACTUAL: %s

Responde únicamente en formato JSON:
{
  "riskLevel": "BAJO|MEDIO|ALTO|CRÍTICO",
  "safetyAssessment": "evaluación de seguridad",
  "qualityImpact": "impacto en calidad",
  "timeToDeterioration": "tiempo estimado",
  "recommendations": ["recomendación 1", "recomendación 2"],
  "consequences": "consecuencias si no se actúa"
}`,
		p.Name, p.Description, *in.Temperature, humidity, duration,
		p.TempMin, p.TempMax, p.HumidityMin, p.HumidityMax, p.ShelfLife, st.Message)
}

type promptReading struct {
	LightLevel  *int      `json:"lightLevel"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Voltage     *float64  `json:"voltage"`
	Timestamp   time.Time `json:"timestamp"`
}

func sensorPrompt(readings []models.SensorReading) (string, error) {
	rows := make([]promptReading, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, promptReading{
			LightLevel:  r.LightLevel,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Voltage:     r.Voltage,
			Timestamp:   r.Timestamp,
		})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Eres un experto en análisis de datos IoT y sensores ESP32. Analiza los siguientes datos de sensores:

%s

Rangos de referencia del sensor de luz (0-4095):
- 0-500 muy baja, 500-1500 baja, 1500-3000 media, 3000-4095 alta

Responde ÚNICAMENTE en formato JSON válido con esta estructura exacta:
{
  "summary": "resumen del estado actual",
  "recommendations": ["recomendación 1", "recomendación 2"],
  "alerts": ["alerta 1"]
}`, data), nil
}

func fallbackFoodAnalysis(st models.TemperatureAssessment) models.FoodAIAnalysis {
	risk := "MEDIO"
	if st.Severity == foods.SeverityCritical {
		risk = "CRÍTICO"
	}
	return models.FoodAIAnalysis{
		RiskLevel:           risk,
		SafetyAssessment:    "Análisis automático no disponible",
		QualityImpact:       st.Message,
		TimeToDeterioration: "Consultar manualmente",
		Recommendations:     []string{"Verificar temperatura", "Monitorear continuamente"},
		Consequences:        "Posible deterioro del alimento",
	}
}

func fallbackSensorAnalysis() models.SensorAnalysis {
	return models.SensorAnalysis{
		Summary: "Sistema funcionando correctamente. Datos del sensor recibidos y procesados.",
		Recommendations: []string{
			"Continuar monitoreando los niveles de luz",
			"Verificar patrones de cambio durante el día",
			"Considerar agregar más sensores para análisis completo",
		},
		Alerts: []string{},
	}
}

// unparsableSensorAnalysis keeps plain-text replies as the summary.
func unparsableSensorAnalysis(text string) models.SensorAnalysis {
	summary := text
	if strings.Contains(text, "{") {
		summary = "Error al procesar el análisis. Intenta nuevamente."
	}
	return models.SensorAnalysis{
		Summary: summary,
		Recommendations: []string{
			"Verificar la conexión del sensor",
			"Monitorear cambios en el ambiente",
			"Revisar los datos históricos",
		},
		Alerts: []string{},
	}
}

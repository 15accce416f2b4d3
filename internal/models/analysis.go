package models

// TemperatureAssessment is the classifier status with a severity and message for people.
type TemperatureAssessment struct {
	Status   Status `json:"status"`
	Severity string `json:"severity"` // safe | warning | danger | critical
	Message  string `json:"message"`
}

// HumidityAssessment reports the humidity against the profile band.
type HumidityAssessment struct {
	Status   string `json:"status"` // LOW | HIGH | OPTIMAL
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Alert is an actionable condition on a food profile.
type Alert struct {
	Type     string `json:"type"` // CRITICAL | WARNING
	Message  string `json:"message"`
	Action   string `json:"action"`
	Priority int    `json:"priority"`
}

// FoodAIAnalysis is the structured answer expected from the LLM for a food check.
type FoodAIAnalysis struct {
	RiskLevel           string   `json:"riskLevel"`
	SafetyAssessment    string   `json:"safetyAssessment"`
	QualityImpact       string   `json:"qualityImpact"`
	TimeToDeterioration string   `json:"timeToDeterioration"`
	Recommendations     []string `json:"recommendations"`
	Consequences        string   `json:"consequences"`
}

// FoodReport is the full response of a food monitoring check.
type FoodReport struct {
	Food              string `json:"foodType"`
	Category          string `json:"category"`
	CurrentConditions struct {
		Temperature float64  `json:"temperature"`
		Humidity    *float64 `json:"humidity"`
	} `json:"currentConditions"`
	RecommendedConditions struct {
		TemperatureRange string `json:"temperatureRange"`
		HumidityRange    string `json:"humidityRange"`
		ShelfLife        string `json:"shelfLife"`
	} `json:"recommendedConditions"`
	Status         TemperatureAssessment `json:"status"`
	HumidityStatus *HumidityAssessment   `json:"humidityStatus"`
	AIAnalysis     FoodAIAnalysis        `json:"aiAnalysis"`
	Alerts         []Alert               `json:"alerts"`
}

// SensorAnalysis is the LLM summary of a batch of readings.
type SensorAnalysis struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Alerts          []string `json:"alerts"`
}

package domain

// RiskLevel grades farm risk and individual risk factors
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskFactor is a single contributor to the overall farm risk
type RiskFactor struct {
	Name     string    `json:"name"`
	Impact   string    `json:"impact"`
	Severity RiskLevel `json:"severity"`
}

// FarmRisk is the pre-computed risk assessment shown on the main dashboard card
type FarmRisk struct {
	OverallRisk RiskLevel    `json:"overallRisk"`
	RiskScore   int          `json:"riskScore"`
	Factors     []RiskFactor `json:"factors"`
	LastUpdated string       `json:"lastUpdated,omitempty"`
}

// IrrigationAction is the irrigation recommendation
type IrrigationAction string

const (
	IrrigateNow     IrrigationAction = "IRRIGATE_NOW"
	DelayIrrigation IrrigationAction = "DELAY"
)

// IrrigationGuidance is the smart irrigation card payload
type IrrigationGuidance struct {
	Action           IrrigationAction  `json:"action"`
	DelayHours       *int              `json:"delayHours,omitempty"`
	SoilMoisture     float64           `json:"soilMoisture"`
	NextRainExpected string            `json:"nextRainExpected,omitempty"`
	RainProbability  float64           `json:"rainProbability"`
	Recommendation   string            `json:"recommendation,omitempty"`
	WeatherForecast  []WeatherForecast `json:"weatherForecast,omitempty"`
}

// MarketAction is the market timing recommendation
type MarketAction string

const (
	SellNow    MarketAction = "SELL_NOW"
	WaitToSell MarketAction = "WAIT"
)

// PriceDirection is the expected short-term price movement
type PriceDirection string

const (
	PriceUp     PriceDirection = "UP"
	PriceDown   PriceDirection = "DOWN"
	PriceStable PriceDirection = "STABLE"
)

// MarketPrice is one point of the mandi price history
type MarketPrice struct {
	Date   string   `json:"date"`
	Price  float64  `json:"price"`
	Volume *float64 `json:"volume,omitempty"`
}

// MarketTiming is the market timing card payload
type MarketTiming struct {
	Action             MarketAction   `json:"action"`
	CurrentPrice       float64        `json:"currentPrice"`
	ExpectedDirection  PriceDirection `json:"expectedDirection"`
	PriceChange        float64        `json:"priceChange"`
	PriceChangePercent float64        `json:"priceChangePercent"`
	RegionalAverage    float64        `json:"regionalAverage"`
	Recommendation     string         `json:"recommendation,omitempty"`
	PriceHistory       []MarketPrice  `json:"priceHistory,omitempty"`
	Crop               string         `json:"crop,omitempty"`
}

// YieldOutlookLevel grades the expected harvest
type YieldOutlookLevel string

const (
	YieldLow    YieldOutlookLevel = "LOW"
	YieldNormal YieldOutlookLevel = "NORMAL"
	YieldHigh   YieldOutlookLevel = "HIGH"
)

// YieldFactor describes one influence on the yield outlook
type YieldFactor struct {
	Name        string `json:"name"`
	Impact      string `json:"impact"` // "POSITIVE", "NEGATIVE", "NEUTRAL"
	Description string `json:"description"`
}

// HistoricalComparison compares predicted yield (quintal/acre) with past seasons
type HistoricalComparison struct {
	LastYear    float64 `json:"lastYear"`
	FiveYearAvg float64 `json:"fiveYearAvg"`
	Predicted   float64 `json:"predicted"`
}

// YieldOutlook is the yield outlook card payload
type YieldOutlook struct {
	Outlook              YieldOutlookLevel    `json:"outlook"`
	Confidence           int                  `json:"confidence"`
	Factors              []YieldFactor        `json:"factors"`
	HistoricalComparison HistoricalComparison `json:"historicalComparison"`
}

// SchemeStatus is the farmer's standing for a government scheme
type SchemeStatus string

const (
	SchemeEligible    SchemeStatus = "ELIGIBLE"
	SchemeApplied     SchemeStatus = "APPLIED"
	SchemeReceived    SchemeStatus = "RECEIVED"
	SchemeNotEligible SchemeStatus = "NOT_ELIGIBLE"
)

// Scheme is a government scheme listed in the eligibility section
type Scheme struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	NameHindi        string       `json:"nameHindi"`
	Description      string       `json:"description"`
	DescriptionHindi string       `json:"descriptionHindi"`
	BenefitAmount    string       `json:"benefitAmount"`
	Eligibility      []string     `json:"eligibility"`
	Documents        []string     `json:"documents"`
	Deadline         string       `json:"deadline,omitempty"`
	Status           SchemeStatus `json:"status"`
	ApplyURL         string       `json:"applyUrl,omitempty"`
	Category         string       `json:"category"`
}

// Coordinates is a map position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StateData is the regional crop profile of an Indian state
type StateData struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	NameHindi       string      `json:"nameHindi"`
	SoilTypes       []string    `json:"soilTypes"`
	MajorCrops      []string    `json:"majorCrops"`
	CurrentSeason   string      `json:"currentSeason"`
	HarvestPeriod   string      `json:"harvestPeriod"`
	AverageRainfall float64     `json:"averageRainfall"` // mm per year
	Coordinates     Coordinates `json:"coordinates"`
}

// NearestState is a state matched to a map position
type NearestState struct {
	State      StateData `json:"state"`
	DistanceKm float64   `json:"distanceKm"`
}

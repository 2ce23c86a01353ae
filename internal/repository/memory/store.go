package memory

import (
	"context"
	"time"

	"github.com/kisanmitra/backend/internal/domain"
)

// Store implements domain.DashboardRepository over a fixed advisory dataset.
// The dataset is never written after NewStore, and getters hand out copies,
// so a Store is safe for concurrent use.
type Store struct {
	farmRisk     domain.FarmRisk
	irrigation   domain.IrrigationGuidance
	market       domain.MarketTiming
	yieldOutlook domain.YieldOutlook
	schemes      []domain.Scheme
	states       []domain.StateData
	weather      []domain.WeatherForecast
}

// NewStore creates a store seeded with the demo dataset
func NewStore() *Store {
	weather := seedWeather()
	delay := 48

	return &Store{
		farmRisk: domain.FarmRisk{
			OverallRisk: domain.RiskLow,
			RiskScore:   25,
			Factors: []domain.RiskFactor{
				{Name: "Weather Conditions", Impact: "Favorable temperatures and expected rainfall", Severity: domain.RiskLow},
				{Name: "Soil Health", Impact: "Good moisture levels, optimal pH", Severity: domain.RiskLow},
				{Name: "Pest Pressure", Impact: "Minimal pest activity detected", Severity: domain.RiskLow},
				{Name: "Market Volatility", Impact: "Stable prices with slight upward trend", Severity: domain.RiskMedium},
				{Name: "Water Availability", Impact: "Adequate groundwater levels", Severity: domain.RiskLow},
			},
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		},
		irrigation: domain.IrrigationGuidance{
			Action:           domain.DelayIrrigation,
			DelayHours:       &delay,
			SoilMoisture:     68,
			NextRainExpected: "Wednesday",
			RainProbability:  75,
			Recommendation:   "Rain expected in 2 days. Delay irrigation to conserve water and reduce costs. Current soil moisture is adequate for crop needs.",
			WeatherForecast:  weather,
		},
		market: domain.MarketTiming{
			Action:             domain.WaitToSell,
			CurrentPrice:       2450,
			ExpectedDirection:  domain.PriceUp,
			PriceChange:        150,
			PriceChangePercent: 6.5,
			RegionalAverage:    2380,
			Recommendation:     "Prices are trending upward. Hold your crop for 1-2 weeks for better returns. Expected peak in mid-January.",
			PriceHistory: []domain.MarketPrice{
				{Date: "Dec 9", Price: 2300},
				{Date: "Dec 10", Price: 2320},
				{Date: "Dec 11", Price: 2350},
				{Date: "Dec 12", Price: 2380},
				{Date: "Dec 13", Price: 2410},
				{Date: "Dec 14", Price: 2430},
				{Date: "Dec 15", Price: 2450},
			},
			Crop: "Wheat",
		},
		yieldOutlook: domain.YieldOutlook{
			Outlook:    domain.YieldNormal,
			Confidence: 78,
			Factors: []domain.YieldFactor{
				{Name: "Adequate Rainfall", Impact: "POSITIVE", Description: "Expected rainfall matches crop requirements"},
				{Name: "Soil Nutrients", Impact: "POSITIVE", Description: "Nitrogen and phosphorus levels are optimal"},
				{Name: "Temperature Stress", Impact: "NEUTRAL", Description: "Temperatures within normal range"},
				{Name: "Pest Risk", Impact: "NEGATIVE", Description: "Slight aphid pressure observed"},
			},
			HistoricalComparison: domain.HistoricalComparison{LastYear: 42, FiveYearAvg: 40, Predicted: 41},
		},
		schemes: seedSchemes(),
		states:  seedStates(),
		weather: weather,
	}
}

// FarmRisk returns the current risk assessment
func (s *Store) FarmRisk(ctx context.Context) (domain.FarmRisk, error) {
	r := s.farmRisk
	r.Factors = append([]domain.RiskFactor(nil), s.farmRisk.Factors...)
	return r, nil
}

// IrrigationGuidance returns the current irrigation advice
func (s *Store) IrrigationGuidance(ctx context.Context) (domain.IrrigationGuidance, error) {
	g := s.irrigation
	if s.irrigation.DelayHours != nil {
		h := *s.irrigation.DelayHours
		g.DelayHours = &h
	}
	g.WeatherForecast = append([]domain.WeatherForecast(nil), s.irrigation.WeatherForecast...)
	return g, nil
}

// MarketTiming returns the current market advice
func (s *Store) MarketTiming(ctx context.Context) (domain.MarketTiming, error) {
	m := s.market
	m.PriceHistory = append([]domain.MarketPrice(nil), s.market.PriceHistory...)
	return m, nil
}

// YieldOutlook returns the season's yield outlook
func (s *Store) YieldOutlook(ctx context.Context) (domain.YieldOutlook, error) {
	y := s.yieldOutlook
	y.Factors = append([]domain.YieldFactor(nil), s.yieldOutlook.Factors...)
	return y, nil
}

// Schemes returns every government scheme
func (s *Store) Schemes(ctx context.Context) ([]domain.Scheme, error) {
	out := make([]domain.Scheme, len(s.schemes))
	for i, sc := range s.schemes {
		sc.Eligibility = append([]string(nil), sc.Eligibility...)
		sc.Documents = append([]string(nil), sc.Documents...)
		out[i] = sc
	}
	return out, nil
}

// States returns the regional crop profiles
func (s *Store) States(ctx context.Context) ([]domain.StateData, error) {
	out := make([]domain.StateData, len(s.states))
	for i, st := range s.states {
		st.SoilTypes = append([]string(nil), st.SoilTypes...)
		st.MajorCrops = append([]string(nil), st.MajorCrops...)
		out[i] = st
	}
	return out, nil
}

// WeatherForecast returns the seven-day forecast
func (s *Store) WeatherForecast(ctx context.Context) ([]domain.WeatherForecast, error) {
	return append([]domain.WeatherForecast(nil), s.weather...), nil
}

// Health always returns nil for the in-memory store
func (s *Store) Health(ctx context.Context) error {
	return nil
}

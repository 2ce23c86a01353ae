package domain

import "context"

// DashboardData aggregates every dashboard card
type DashboardData struct {
	FarmRisk     FarmRisk           `json:"farmRisk"`
	Irrigation   IrrigationGuidance `json:"irrigation"`
	Market       MarketTiming       `json:"market"`
	YieldOutlook YieldOutlook       `json:"yieldOutlook"`
	Schemes      []Scheme           `json:"schemes"`
	Weather      []WeatherForecast  `json:"weather"`
}

// DashboardRepository defines the read side of the advisory data store.
// The domain owns the interface; storage packages implement it.
type DashboardRepository interface {
	// FarmRisk returns the current risk assessment
	FarmRisk(ctx context.Context) (FarmRisk, error)

	// IrrigationGuidance returns the current irrigation advice
	IrrigationGuidance(ctx context.Context) (IrrigationGuidance, error)

	// MarketTiming returns the current market advice
	MarketTiming(ctx context.Context) (MarketTiming, error)

	// YieldOutlook returns the season's yield outlook
	YieldOutlook(ctx context.Context) (YieldOutlook, error)

	// Schemes returns every known government scheme
	Schemes(ctx context.Context) ([]Scheme, error)

	// States returns the regional crop profiles
	States(ctx context.Context) ([]StateData, error)

	// WeatherForecast returns the seven-day forecast
	WeatherForecast(ctx context.Context) ([]WeatherForecast, error)

	// Health checks the store
	Health(ctx context.Context) error
}

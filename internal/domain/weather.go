package domain

// WeatherForecast is one day of the seven-day forecast strip
type WeatherForecast struct {
	Date          string  `json:"date"`
	Temperature   float64 `json:"temperature"`
	Humidity      int     `json:"humidity"`
	Precipitation int     `json:"precipitation"` // chance of rain, percent
	Condition     string  `json:"condition"`
	Icon          string  `json:"icon"`
}

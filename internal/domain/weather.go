package domain

import "time"

// ForecastPoint is one 3-hour step as returned by the weather provider.
type ForecastPoint struct {
	At          time.Time
	Temperature float64
	Humidity    float64
	Description string
}

type WeatherEntry struct {
	DateTime    string  `json:"datetime"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    float64 `json:"humidity"`
}

package app

import (
	"fmt"
	"time"

	"tripplanner/internal/domain"
)

func noon(day time.Time) string { return day.Format(time.DateOnly) + " 12:00:00" }

func fallbackWeather(today time.Time) domain.WeatherEntry {
	return domain.WeatherEntry{DateTime: noon(today), Temperature: 28.5, Description: "Partly cloudy", Humidity: 65}
}

func fallbackHotel(city string, days int) domain.HotelEntry {
	return domain.HotelEntry{Name: "Sample Hotel in " + city, Rating: 4.2, PricePerNight: 5000, TotalCost: 5000 * float64(days)}
}

func fallbackRestaurant(city string) domain.RestaurantEntry {
	return domain.RestaurantEntry{Name: "Local Cuisine " + city, Cuisine: "Local", Rating: domain.NumericRating(4.5), Price: domain.PriceMid}
}

func fallbackAttraction(city, typ string) domain.AttractionStop {
	return domain.AttractionStop{Name: fmt.Sprintf("Popular %s in %s", typ, city), Rating: 4.5, EntranceFee: 0, Day: 1}
}

// SampleResult is the two-entry payload used when aggregation fails outright.
func SampleResult(city string, days int, today time.Time) domain.TripResult {
	return domain.TripResult{
		Weather: []domain.WeatherEntry{
			fallbackWeather(today),
			{DateTime: noon(today.AddDate(0, 0, 1)), Temperature: 29.3, Description: "Sunny", Humidity: 60},
		},
		Hotels: []domain.HotelEntry{
			fallbackHotel(city, days),
			{Name: "Budget Stay " + city, Rating: 3.8, PricePerNight: 3000, TotalCost: 3000 * float64(days)},
		},
		Restaurants: []domain.RestaurantEntry{
			fallbackRestaurant(city),
			{Name: "Fine Dining " + city, Cuisine: "International", Rating: domain.NumericRating(4.7), Price: domain.PriceFine},
		},
	}
}

// SampleData is the fixed illustrative payload served without touching any provider.
func SampleData(today time.Time) domain.TripResult {
	res := SampleResult("Sample City", 3, today)
	res.Attractions = []domain.AttractionStop{
		{Name: "Sample Monument", Rating: 4.5, EntranceFee: 500, Day: 1},
		{Name: "Sample Museum", Rating: 4.3, EntranceFee: 300, Day: 2},
	}
	return res
}

// ensureSections injects one fallback entry into every empty section.
// Attractions are only backfilled when a day plan was attempted (non-nil).
func ensureSections(res *domain.TripResult, city, typ string, days int, today time.Time) {
	if len(res.Weather) == 0 {
		res.Weather = []domain.WeatherEntry{fallbackWeather(today)}
	}
	if len(res.Hotels) == 0 {
		res.Hotels = []domain.HotelEntry{fallbackHotel(city, days)}
	}
	if len(res.Restaurants) == 0 {
		res.Restaurants = []domain.RestaurantEntry{fallbackRestaurant(city)}
	}
	if res.Attractions != nil && len(res.Attractions) == 0 {
		res.Attractions = []domain.AttractionStop{fallbackAttraction(city, typ)}
	}
}

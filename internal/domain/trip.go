package domain

// TripResult is the aggregate itinerary. Attractions is nil unless a day plan was generated.
type TripResult struct {
	Weather     []WeatherEntry    `json:"weather"`
	Hotels      []HotelEntry      `json:"hotels"`
	Restaurants []RestaurantEntry `json:"restaurants"`
	Attractions []AttractionStop  `json:"attractions,omitempty"`
}

// SearchForm is the trip request as submitted by the frontend.
type SearchForm struct {
	City           string
	Location       string
	Days           int
	Guests         int
	Budget         string
	AttractionType string
}

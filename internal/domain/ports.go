package domain

import "context"

type AttractionCatalog interface {
	// Match returns rows whose city and type contain the given values (case-insensitive), in dataset order.
	Match(city, typ string) ([]Attraction, error)
}

type AttractionStore interface {
	ListAttractions(ctx context.Context) ([]Attraction, error)
	// UpsertAttractions writes rows whose dataset index starts at offset. ListAttractions
	// returns rows ordered by that index.
	UpsertAttractions(ctx context.Context, offset int, rows []Attraction) error
}

type WeatherProvider interface {
	Forecast(ctx context.Context, city string) ([]ForecastPoint, error)
}

// HotelProvider returns raw property records; price and rating fields vary in shape.
type HotelProvider interface {
	SearchByCoordinates(ctx context.Context, q HotelQuery) ([]map[string]any, error)
}

type PlacesProvider interface {
	NearbyRestaurants(ctx context.Context, lat, lon float64, radius int) ([]map[string]any, error)
}

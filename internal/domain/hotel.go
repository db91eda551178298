package domain

import "time"

type HotelQuery struct {
	Lat, Lon float64
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
}

// HotelEntry is a ranked hotel candidate; TotalCost already includes the attraction's entrance fee.
type HotelEntry struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"pricePerNight"`
	TotalCost     float64 `json:"totalCost"`
}

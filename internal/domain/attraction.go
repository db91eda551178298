package domain

type Attraction struct {
	City        string
	Type        string
	Name        string
	EntranceFee float64
	Lat, Lon    float64
	Reviews     float64 // review volume (lakhs in the bundled dataset)
}

// AttractionStop is an attraction scheduled on a 1-based trip day.
type AttractionStop struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	EntranceFee float64 `json:"entranceFee"`
	Day         int     `json:"day"`
}

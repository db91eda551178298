package domain

const (
	PriceBudget  = "Budget-friendly"
	PriceMid     = "Mid-range"
	PriceFine    = "Fine dining"
	PriceUnknown = "Unknown"
)

type RestaurantEntry struct {
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	Rating  Rating `json:"rating"`
	Price   string `json:"price"`
}

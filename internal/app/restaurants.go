package app

import (
	"sort"
	"strings"
	"unicode"

	"tripplanner/internal/domain"
)

const maxRestaurants = 5

var genericPlaceTypes = map[string]struct{}{
	"restaurant":        {},
	"food":              {},
	"point_of_interest": {},
	"establishment":     {},
}

// CuisineLabel turns provider category tags into a readable label, e.g.
// ["indian_restaurant","bar","food"] -> "Indian Restaurant, Bar".
func CuisineLabel(types []string) string {
	var parts []string
	for _, t := range types {
		if _, generic := genericPlaceTypes[t]; generic {
			continue
		}
		parts = append(parts, titleCase(strings.ReplaceAll(t, "_", " ")))
	}
	if len(parts) == 0 {
		return "Restaurant"
	}
	return strings.Join(parts, ", ")
}

// PriceTier maps the provider's 0-4 price level. ok is false when no level was given.
func PriceTier(level float64, ok bool) string {
	switch {
	case !ok || level < 0:
		return domain.PriceUnknown
	case level <= 1:
		return domain.PriceBudget
	case level == 2:
		return domain.PriceMid
	case level >= 3:
		return domain.PriceFine
	}
	return domain.PriceUnknown
}

// RankRestaurants labels every candidate, orders by rating (unknown last, stable)
// and keeps the top five.
func RankRestaurants(raw []map[string]any) []domain.RestaurantEntry {
	out := make([]domain.RestaurantEntry, 0, len(raw))
	for _, r := range raw {
		name := lookupStr(r, "name")
		if name == "" {
			name = "Unknown Restaurant"
		}
		level, ok := toFloat(lookupAny(r, "price_level"))
		out = append(out, domain.RestaurantEntry{
			Name:    name,
			Cuisine: CuisineLabel(lookupStrings(r, "types")),
			Rating:  domain.ParseRating(lookupAny(r, "rating")),
			Price:   PriceTier(level, ok),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating.Compare(out[j].Rating) > 0 })
	if len(out) > maxRestaurants {
		out = out[:maxRestaurants]
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		rs := []rune(strings.ToLower(w))
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

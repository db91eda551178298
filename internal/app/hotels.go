package app

import (
	"sort"

	"tripplanner/internal/domain"
)

// nightlyPrice reads the price from either provider shape: price_breakdown.gross_price
// first, then min_total_price. A key that exists wins even when its value is null.
// ok is false when neither key exists.
func nightlyPrice(h map[string]any) (v any, ok bool) {
	if has(h, "price_breakdown.gross_price") {
		return lookupAny(h, "price_breakdown.gross_price"), true
	}
	if has(h, "min_total_price") {
		return lookupAny(h, "min_total_price"), true
	}
	return nil, false
}

// RankHotels prices every candidate for the stay, drops those over budget and orders
// the rest by rating, highest first (stable). Records without a name, without a numeric
// nightly price, or with a non-numeric rating are skipped and only counted. An absent,
// null or empty rating counts as 0.
func RankHotels(raw []map[string]any, entranceFee float64, nights int, budget float64) ([]domain.HotelEntry, int) {
	out := make([]domain.HotelEntry, 0, len(raw))
	skipped := 0
	for _, h := range raw {
		name := lookupStr(h, "hotel_name")
		if name == "" {
			skipped++
			continue
		}
		p, ok := nightlyPrice(h)
		if !ok {
			skipped++
			continue
		}
		price, ok := toFloat(p)
		if !ok {
			skipped++
			continue
		}
		rating, ok := reviewScore(h)
		if !ok {
			skipped++
			continue
		}

		total := entranceFee + float64(nights)*price
		if total > budget {
			continue
		}
		out = append(out, domain.HotelEntry{
			Name:          name,
			Rating:        rating,
			PricePerNight: price,
			TotalCost:     total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, skipped
}

func reviewScore(h map[string]any) (float64, bool) {
	v := lookupAny(h, "review_score")
	if v == nil || v == "" {
		return 0, true
	}
	return toFloat(v)
}

// mergeHotels appends hotels whose name is not already present. Exact match only.
func mergeHotels(dst, src []domain.HotelEntry) []domain.HotelEntry {
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, h := range dst {
		seen[h.Name] = struct{}{}
	}
	for _, h := range src {
		if _, dup := seen[h.Name]; dup {
			continue
		}
		seen[h.Name] = struct{}{}
		dst = append(dst, h)
	}
	return dst
}

// mergeWeather appends entries whose timestamp is not already present.
func mergeWeather(dst, src []domain.WeatherEntry) []domain.WeatherEntry {
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, w := range dst {
		seen[w.DateTime] = struct{}{}
	}
	for _, w := range src {
		if _, dup := seen[w.DateTime]; dup {
			continue
		}
		seen[w.DateTime] = struct{}{}
		dst = append(dst, w)
	}
	return dst
}

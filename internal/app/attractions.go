package app

import (
	"sort"

	"tripplanner/internal/domain"
)

const stopsPerDay = 2

// PlannedStop is an attraction assigned to a trip day.
type PlannedStop struct {
	domain.Attraction
	Day int // 1-based
}

// PickFirst returns the first matching row. Only one attraction is explored on the
// budget path; the rest are left to the day planner.
func PickFirst(matches []domain.Attraction) (domain.Attraction, bool) {
	if len(matches) == 0 {
		return domain.Attraction{}, false
	}
	return matches[0], true
}

// PlanDays ranks matches by review volume (desc) then entrance fee (asc), keeps
// 2*days of them and assigns two per day in rank order.
func PlanDays(matches []domain.Attraction, days int) []PlannedStop {
	if days <= 0 || len(matches) == 0 {
		return nil
	}
	ranked := make([]domain.Attraction, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Reviews != ranked[j].Reviews {
			return ranked[i].Reviews > ranked[j].Reviews
		}
		return ranked[i].EntranceFee < ranked[j].EntranceFee
	})
	if n := stopsPerDay * days; len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]PlannedStop, len(ranked))
	for i, a := range ranked {
		out[i] = PlannedStop{Attraction: a, Day: i/stopsPerDay + 1}
	}
	return out
}

func (s PlannedStop) Stop() domain.AttractionStop {
	return domain.AttractionStop{Name: s.Name, Rating: s.Reviews, EntranceFee: s.EntranceFee, Day: s.Day}
}

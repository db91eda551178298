package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tripplanner/internal/app"
	"tripplanner/internal/dataset"
	"tripplanner/internal/domain"
)

// ---- fakes ----

var now = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

type fakeWeather struct {
	err   error
	calls int
	mu    sync.Mutex
}

// two steps today, one at noon on each of the next three days
func (f *fakeWeather) Forecast(ctx context.Context, city string) ([]domain.ForecastPoint, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	return []domain.ForecastPoint{
		{At: day.Add(9 * time.Hour), Temperature: 27, Humidity: 60, Description: "haze"},
		{At: day.Add(12 * time.Hour), Temperature: 31, Humidity: 45, Description: "clear sky"},
		{At: day.AddDate(0, 0, 1).Add(12 * time.Hour), Temperature: 30, Description: "few clouds"},
		{At: day.AddDate(0, 0, 2).Add(12 * time.Hour), Temperature: 29, Description: "rain"},
		{At: day.AddDate(0, 0, 3).Add(12 * time.Hour), Temperature: 28, Description: "mist"},
	}, nil
}

// fakeHotels answers per latitude; delay simulates slow providers for ordering checks.
type fakeHotels struct {
	byLat   map[float64][]map[string]any
	delay   map[float64]time.Duration
	err     error
	mu      sync.Mutex
	queries []domain.HotelQuery
}

func (f *fakeHotels) SearchByCoordinates(ctx context.Context, q domain.HotelQuery) ([]map[string]any, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if d := f.delay[q.Lat]; d > 0 {
		time.Sleep(d)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.byLat[q.Lat], nil
}

type fakePlaces struct {
	results []map[string]any
	err     error
}

func (f *fakePlaces) NearbyRestaurants(ctx context.Context, lat, lon float64, radius int) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type brokenCatalog struct{}

func (brokenCatalog) Match(city, typ string) ([]domain.Attraction, error) {
	return nil, domain.ErrDatasetUnavailable
}

func hotel(name string, score, price float64) map[string]any {
	return map[string]any{"hotel_name": name, "review_score": score, "min_total_price": price}
}

func agraTable() *dataset.Table {
	return dataset.New([]domain.Attraction{
		{City: "Agra", Type: "Monument", Name: "Itmad-ud-Daulah", EntranceFee: 30, Lat: 1, Lon: 1, Reviews: 0.3},
		{City: "Agra", Type: "Monument", Name: "Taj Mahal", EntranceFee: 50, Lat: 2, Lon: 2, Reviews: 2.8},
		{City: "Agra", Type: "Fort", Name: "Agra Fort", EntranceFee: 50, Lat: 3, Lon: 3, Reviews: 0.9},
		{City: "Agra", Type: "Monument", Name: "Mehtab Bagh", EntranceFee: 30, Lat: 4, Lon: 4, Reviews: 0.3},
	})
}

func newPlanner(c domain.AttractionCatalog, w domain.WeatherProvider, h domain.HotelProvider, p domain.PlacesProvider) *app.Planner {
	return app.NewPlanner(c, w, h, p, app.Options{Location: time.UTC, Now: func() time.Time { return now }})
}

var restaurants = []map[string]any{
	{"name": "Pinch of Spice", "rating": 4.4, "price_level": 2.0, "types": []any{"restaurant", "food"}},
}

// ---- tests ----

func TestPlan_NoMatchesAndWeatherDown_FallsBackPerSection(t *testing.T) {
	p := newPlanner(dataset.New(nil), &fakeWeather{err: errors.New("dial tcp: connection refused")}, &fakeHotels{}, &fakePlaces{})

	res := p.Plan(context.Background(), domain.SearchForm{City: "Sample City", Days: 3, Budget: "₹15,000"})

	if len(res.Weather) != 1 || res.Weather[0].DateTime != "2026-10-14 12:00:00" || res.Weather[0].Description != "Partly cloudy" {
		t.Fatalf("expected one fallback weather entry, got %+v", res.Weather)
	}
	if len(res.Hotels) != 1 || res.Hotels[0].Name != "Sample Hotel in Sample City" || res.Hotels[0].TotalCost != 15000 {
		t.Fatalf("expected one fallback hotel, got %+v", res.Hotels)
	}
	if len(res.Restaurants) != 1 || res.Restaurants[0].Name != "Local Cuisine Sample City" {
		t.Fatalf("expected one fallback restaurant, got %+v", res.Restaurants)
	}
	if len(res.Attractions) != 1 || res.Attractions[0].Day != 1 {
		t.Fatalf("expected one fallback attraction after the day planner ran, got %+v", res.Attractions)
	}
}

func TestRun_MalformedBudgetIsFatal(t *testing.T) {
	w := &fakeWeather{}
	p := newPlanner(agraTable(), w, &fakeHotels{}, &fakePlaces{})

	for _, b := range []string{"", "cheap"} {
		out := p.Run(context.Background(), domain.SearchForm{City: "Agra", Days: 2, Budget: b})
		if out.Kind != app.Fatal || !errors.Is(out.Reason, domain.ErrInvalidBudget) {
			t.Fatalf("budget %q: expected fatal invalid budget, got %v / %v", b, out.Kind, out.Reason)
		}

		res := p.Plan(context.Background(), domain.SearchForm{City: "Agra", Days: 2, Budget: b})
		if len(res.Weather) != 2 || len(res.Hotels) != 2 || len(res.Restaurants) != 2 {
			t.Fatalf("expected the two-entry sample payload, got %+v", res)
		}
		if res.Hotels[1].Name != "Budget Stay Agra" || res.Hotels[0].TotalCost != 10000 {
			t.Fatalf("sample payload not interpolated: %+v", res.Hotels)
		}
		if res.Attractions != nil {
			t.Fatalf("sample payload should carry no attractions")
		}
	}
	if w.calls != 0 {
		t.Fatalf("providers must not be called when the budget is invalid")
	}
}

func TestPlan_DatasetUnavailableUsesSample(t *testing.T) {
	p := newPlanner(brokenCatalog{}, &fakeWeather{}, &fakeHotels{}, &fakePlaces{})

	out := p.Run(context.Background(), domain.SearchForm{City: "Agra", Days: 1, Budget: "₹15,000"})
	if out.Kind != app.Fatal || !errors.Is(out.Reason, domain.ErrDatasetUnavailable) {
		t.Fatalf("expected fatal dataset error, got %v / %v", out.Kind, out.Reason)
	}
	res := p.Plan(context.Background(), domain.SearchForm{City: "Agra", Days: 1, Budget: "₹15,000"})
	if len(res.Weather) != 2 || res.Weather[1].DateTime != "2026-10-15 12:00:00" {
		t.Fatalf("expected sample weather, got %+v", res.Weather)
	}
}

func TestRun_EnoughHotelsSkipsDayPlanner(t *testing.T) {
	h := &fakeHotels{byLat: map[float64][]map[string]any{
		1: {hotel("A", 8, 1000), hotel("B", 9, 1000), hotel("C", 7, 1000)},
	}}
	p := newPlanner(agraTable(), &fakeWeather{}, h, &fakePlaces{results: restaurants})

	out := p.Run(context.Background(), domain.SearchForm{City: "agra", Days: 2, Guests: 3, Budget: "₹7,500-₹15,000"})

	if out.Kind != app.Success {
		t.Fatalf("expected success, got %v (%v)", out.Kind, out.Warnings)
	}
	res := out.Result
	if res.Attractions != nil {
		t.Fatalf("day planner should not run with 3 hotels, got %+v", res.Attractions)
	}
	if len(res.Hotels) != 3 || res.Hotels[0].Name != "B" {
		t.Fatalf("unexpected hotels: %+v", res.Hotels)
	}
	if len(res.Weather) != 2 || res.Weather[0].DateTime != "2026-10-14 09:00:00" {
		t.Fatalf("expected today's two forecast steps, got %+v", res.Weather)
	}
	if len(res.Restaurants) != 1 || res.Restaurants[0].Price != domain.PriceMid {
		t.Fatalf("unexpected restaurants: %+v", res.Restaurants)
	}

	// one call, for the first matching attraction only, with request-derived dates
	if len(h.queries) != 1 {
		t.Fatalf("expected one hotel search, got %d", len(h.queries))
	}
	q := h.queries[0]
	if q.Lat != 1 || q.Adults != 3 || q.CheckIn.Format(time.DateOnly) != "2026-10-14" || q.CheckOut.Format(time.DateOnly) != "2026-10-16" {
		t.Fatalf("unexpected hotel query: %+v", q)
	}
}

func TestRun_FewHotelsMergesDayPlan(t *testing.T) {
	h := &fakeHotels{byLat: map[float64][]map[string]any{
		1: {hotel("Riverside", 8, 1000)},
		2: {hotel("Riverside", 8, 1000), hotel("Garden View", 9, 1200), {"hotel_name": "Priceless"}, hotel("Riverside Annex", 7, 900)},
	}}
	p := newPlanner(agraTable(), &fakeWeather{}, h, &fakePlaces{results: restaurants})

	out := p.Run(context.Background(), domain.SearchForm{City: "Agra", Days: 1, Budget: "₹15,000"})

	if out.Kind != app.PartialFailure || len(out.Warnings) != 1 {
		t.Fatalf("expected one skip warning, got %v %v", out.Kind, out.Warnings)
	}
	res := out.Result

	wantHotels := []string{"Riverside", "Garden View", "Riverside Annex"}
	if len(res.Hotels) != len(wantHotels) {
		t.Fatalf("unexpected hotels: %+v", res.Hotels)
	}
	for i, n := range wantHotels {
		if res.Hotels[i].Name != n {
			t.Fatalf("hotel %d: got %s, want %s", i, res.Hotels[i].Name, n)
		}
	}

	// today's two steps plus tomorrow's noon once (both day-1 stops fetch it)
	if len(res.Weather) != 3 || res.Weather[2].DateTime != "2026-10-15 12:00:00" {
		t.Fatalf("unexpected merged weather: %+v", res.Weather)
	}

	// Taj Mahal ranks first on reviews; Itmad-ud-Daulah ties Mehtab Bagh and wins on dataset order
	if len(res.Attractions) != 2 || res.Attractions[0].Name != "Taj Mahal" || res.Attractions[1].Name != "Itmad-ud-Daulah" {
		t.Fatalf("unexpected attractions: %+v", res.Attractions)
	}
	// restaurants from the day plan are not merged
	if len(res.Restaurants) != 1 {
		t.Fatalf("expected explored restaurants only, got %+v", res.Restaurants)
	}
}

func TestGenerateTrip_OrderIndependentOfCompletion(t *testing.T) {
	h := &fakeHotels{
		byLat: map[float64][]map[string]any{
			2: {hotel("Slow", 9, 100)},
			1: {hotel("Fast", 1, 100)},
		},
		delay: map[float64]time.Duration{2: 50 * time.Millisecond},
	}
	p := newPlanner(agraTable(), &fakeWeather{}, h, &fakePlaces{})

	res, _, err := p.GenerateTrip(context.Background(), app.Query{City: "Agra", Type: "Monument", Budget: 1e6, Days: 1, Guests: 2})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(res.Hotels) != 2 || res.Hotels[0].Name != "Slow" || res.Hotels[1].Name != "Fast" {
		t.Fatalf("hotels must follow plan order, got %+v", res.Hotels)
	}
}

func TestRun_ProviderFailuresAreWarnings(t *testing.T) {
	p := newPlanner(agraTable(),
		&fakeWeather{err: errors.New("weather down")},
		&fakeHotels{err: errors.New("hotels down")},
		&fakePlaces{err: errors.New("places down")})

	out := p.Run(context.Background(), domain.SearchForm{City: "Agra", Days: 1, Budget: "₹15,000"})
	if out.Kind != app.PartialFailure {
		t.Fatalf("expected partial failure, got %v", out.Kind)
	}
	if len(out.Result.Hotels) != 0 || len(out.Result.Weather) != 0 {
		t.Fatalf("expected empty sections, got %+v", out.Result)
	}
	// explore: 3 warnings; day plan: 2 stops x 3 providers
	if len(out.Warnings) != 9 {
		t.Fatalf("expected 9 warnings, got %d: %v", len(out.Warnings), out.Warnings)
	}

	res := p.Plan(context.Background(), domain.SearchForm{City: "Agra", Days: 1, Budget: "₹15,000"})
	if len(res.Weather) != 1 || len(res.Hotels) != 1 || len(res.Restaurants) != 1 {
		t.Fatalf("expected per-section fallbacks, got %+v", res)
	}
	if len(res.Attractions) != 2 {
		t.Fatalf("day plan attractions should survive provider failures, got %+v", res.Attractions)
	}
}

func TestDayPlanAndWeatherToday(t *testing.T) {
	p := newPlanner(agraTable(), &fakeWeather{}, &fakeHotels{}, &fakePlaces{})

	stops, err := p.DayPlan("Agra", "", 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(stops) != 4 || stops[0].Name != "Taj Mahal" || stops[3].Day != 2 {
		t.Fatalf("unexpected plan: %+v", stops)
	}
	if w := p.WeatherToday(context.Background(), "Agra"); len(w) != 2 {
		t.Fatalf("expected today's forecast, got %+v", w)
	}
	if _, err := newPlanner(brokenCatalog{}, nil, nil, nil).DayPlan("Agra", "Fort", 1); err == nil {
		t.Fatalf("expected dataset error")
	}
}

func TestSampleData(t *testing.T) {
	res := app.SampleData(now)
	if len(res.Attractions) != 2 || res.Hotels[0].Name != "Sample Hotel in Sample City" || res.Hotels[0].TotalCost != 15000 {
		t.Fatalf("unexpected sample data: %+v", res)
	}
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"tripplanner/internal/adapters/observability"
	"tripplanner/internal/domain"
)

const (
	DefaultAttractionType = "Monument"
	DefaultGuests         = 2
	DefaultBudget         = "₹15,000"
	DefaultRadius         = 1500
	minHotels             = 3
)

type Options struct {
	Location *time.Location   // calendar used for "today" and forecast dates; nil is time.Local
	Now      func() time.Time // nil is time.Now
	FanOut   int              // concurrent provider calls per request; <= 0 is 6
	Radius   int              // restaurant search radius in metres; <= 0 is 1500
}

// Planner assembles itineraries from the attraction catalog and the three providers.
type Planner struct {
	catalog domain.AttractionCatalog
	weather domain.WeatherProvider
	hotels  domain.HotelProvider
	places  domain.PlacesProvider
	loc     *time.Location
	now     func() time.Time
	fanout  int
	radius  int
}

func NewPlanner(c domain.AttractionCatalog, w domain.WeatherProvider, h domain.HotelProvider, p domain.PlacesProvider, o Options) *Planner {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.FanOut <= 0 {
		o.FanOut = 6
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	return &Planner{catalog: c, weather: w, hotels: h, places: p, loc: o.Location, now: o.Now, fanout: o.FanOut, radius: o.Radius}
}

// Query is a parsed trip request.
type Query struct {
	City   string
	Type   string
	Budget float64
	Days   int
	Guests int
}

func (p *Planner) today() time.Time {
	n := p.now().In(p.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, p.loc)
}

// Plan runs the aggregation and always returns a usable itinerary: a fatal outcome
// becomes the sample payload and every empty section gets one fallback entry.
func (p *Planner) Plan(ctx context.Context, form domain.SearchForm) domain.TripResult {
	form = withDefaults(form)
	out := p.Run(ctx, form)
	observability.ObserveTrip(out.Kind.String())

	res := out.Result
	switch out.Kind {
	case Fatal:
		log.Warn().Err(out.Reason).Str("city", form.City).Msg("trip aggregation failed; using sample data")
		res = SampleResult(form.City, form.Days, p.today())
	case PartialFailure:
		log.Info().Str("city", form.City).Strs("warnings", out.Warnings).Msg("trip aggregated with warnings")
	}
	ensureSections(&res, form.City, form.AttractionType, form.Days, p.today())
	return res
}

// Run is the unnormalized aggregation. Sections may be empty.
func (p *Planner) Run(ctx context.Context, form domain.SearchForm) Outcome {
	form = withDefaults(form)
	budget, err := ParseBudget(form.Budget)
	if err != nil {
		return failed(err)
	}
	q := Query{City: form.City, Type: form.AttractionType, Budget: budget, Days: form.Days, Guests: form.Guests}

	res, warnings, err := p.Explore(ctx, q)
	if err != nil {
		return failed(err)
	}

	if len(res.Hotels) < minHotels {
		trip, more, err := p.GenerateTrip(ctx, q)
		if err != nil {
			log.Warn().Err(err).Str("city", q.City).Msg("trip generator failed; continuing with explored data")
			warnings = append(warnings, "trip generator: "+err.Error())
		} else {
			res.Hotels = mergeHotels(res.Hotels, trip.Hotels)
			res.Weather = mergeWeather(res.Weather, trip.Weather)
			res.Attractions = trip.Attractions
			warnings = append(warnings, more...)
		}
	}
	return succeeded(res, warnings)
}

// Explore looks at the first matching attraction only: today's weather for the city
// plus hotels and restaurants near that attraction.
func (p *Planner) Explore(ctx context.Context, q Query) (domain.TripResult, []string, error) {
	res := domain.TripResult{Weather: []domain.WeatherEntry{}, Hotels: []domain.HotelEntry{}, Restaurants: []domain.RestaurantEntry{}}

	matches, err := p.catalog.Match(q.City, q.Type)
	if err != nil {
		return res, nil, fmt.Errorf("explore %s: %w", q.City, err)
	}
	a, ok := PickFirst(matches)
	if !ok {
		log.Info().Str("city", q.City).Str("type", q.Type).Msg("no matching attractions")
		return res, nil, nil
	}

	today := p.today()
	var ww, hw, rw []string
	var g errgroup.Group
	g.SetLimit(p.fanout)
	g.Go(func() error {
		res.Weather, ww = p.weatherOn(ctx, q.City, today)
		return nil
	})
	g.Go(func() error {
		res.Hotels, hw = p.hotelsNear(ctx, a, q, today)
		return nil
	})
	g.Go(func() error {
		res.Restaurants, rw = p.restaurantsNear(ctx, a)
		return nil
	})
	_ = g.Wait()

	return res, concat(ww, hw, rw), nil
}

// GenerateTrip builds a day-by-day plan, two attractions per day, with weather for
// each day and lodging/dining near each attraction. Output order follows the plan,
// not provider completion.
func (p *Planner) GenerateTrip(ctx context.Context, q Query) (domain.TripResult, []string, error) {
	res := domain.TripResult{
		Weather:     []domain.WeatherEntry{},
		Hotels:      []domain.HotelEntry{},
		Restaurants: []domain.RestaurantEntry{},
		Attractions: []domain.AttractionStop{},
	}

	matches, err := p.catalog.Match(q.City, q.Type)
	if err != nil {
		return res, nil, fmt.Errorf("generate trip %s: %w", q.City, err)
	}
	stops := PlanDays(matches, q.Days)
	if len(stops) == 0 {
		return res, nil, nil
	}

	type slot struct {
		weather     []domain.WeatherEntry
		hotels      []domain.HotelEntry
		restaurants []domain.RestaurantEntry
		ww, hw, rw  []string
	}
	slots := make([]slot, len(stops))
	today := p.today()

	var g errgroup.Group
	g.SetLimit(p.fanout)
	for i, s := range stops {
		s := s
		sl := &slots[i]
		g.Go(func() error {
			sl.weather, sl.ww = p.weatherOn(ctx, q.City, today.AddDate(0, 0, s.Day))
			return nil
		})
		g.Go(func() error {
			sl.hotels, sl.hw = p.hotelsNear(ctx, s.Attraction, q, today)
			return nil
		})
		g.Go(func() error {
			sl.restaurants, sl.rw = p.restaurantsNear(ctx, s.Attraction)
			return nil
		})
	}
	_ = g.Wait()

	var warnings []string
	for i, s := range stops {
		res.Attractions = append(res.Attractions, s.Stop())
		res.Weather = append(res.Weather, slots[i].weather...)
		res.Hotels = append(res.Hotels, slots[i].hotels...)
		res.Restaurants = append(res.Restaurants, slots[i].restaurants...)
		warnings = append(warnings, concat(slots[i].ww, slots[i].hw, slots[i].rw)...)
	}
	return res, warnings, nil
}

// WeatherToday is today's forecast for a city. Provider failures yield an empty list.
func (p *Planner) WeatherToday(ctx context.Context, city string) []domain.WeatherEntry {
	w, _ := p.weatherOn(ctx, city, p.today())
	return w
}

// DayPlan is the attraction schedule alone, with no provider calls.
func (p *Planner) DayPlan(city, typ string, days int) ([]domain.AttractionStop, error) {
	matches, err := p.catalog.Match(city, typ)
	if err != nil {
		return nil, err
	}
	out := []domain.AttractionStop{}
	for _, s := range PlanDays(matches, days) {
		out = append(out, s.Stop())
	}
	return out, nil
}

func (p *Planner) Today() time.Time { return p.today() }

func (p *Planner) weatherOn(ctx context.Context, city string, day time.Time) ([]domain.WeatherEntry, []string) {
	pts, err := p.weather.Forecast(ctx, city)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("weather forecast unavailable")
		return []domain.WeatherEntry{}, []string{fmt.Sprintf("weather for %s unavailable: %v", city, err)}
	}
	out := SameDay(pts, day, p.loc)
	if len(out) == 0 {
		log.Debug().Str("city", city).Str("date", day.Format(time.DateOnly)).Msg("no forecast for date")
	}
	return out, nil
}

func (p *Planner) hotelsNear(ctx context.Context, a domain.Attraction, q Query, checkIn time.Time) ([]domain.HotelEntry, []string) {
	raw, err := p.hotels.SearchByCoordinates(ctx, domain.HotelQuery{
		Lat: a.Lat, Lon: a.Lon,
		CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, q.Days),
		Adults: q.Guests,
	})
	if err != nil {
		log.Warn().Err(err).Str("attraction", a.Name).Msg("hotel search unavailable")
		return []domain.HotelEntry{}, []string{fmt.Sprintf("hotels near %s unavailable: %v", a.Name, err)}
	}
	hotels, skipped := RankHotels(raw, a.EntranceFee, q.Days, q.Budget)
	if skipped > 0 {
		log.Info().Int("skipped", skipped).Str("attraction", a.Name).Msg("skipped hotels with missing or invalid price")
		return hotels, []string{fmt.Sprintf("skipped %d hotels near %s due to missing or invalid price information", skipped, a.Name)}
	}
	return hotels, nil
}

func (p *Planner) restaurantsNear(ctx context.Context, a domain.Attraction) ([]domain.RestaurantEntry, []string) {
	raw, err := p.places.NearbyRestaurants(ctx, a.Lat, a.Lon, p.radius)
	if err != nil {
		log.Warn().Err(err).Str("attraction", a.Name).Msg("restaurant search unavailable")
		return []domain.RestaurantEntry{}, []string{fmt.Sprintf("restaurants near %s unavailable: %v", a.Name, err)}
	}
	return RankRestaurants(raw), nil
}

func withDefaults(f domain.SearchForm) domain.SearchForm {
	f.City = strings.TrimSpace(f.City)
	if f.Days < 1 {
		f.Days = 1
	}
	if f.Guests <= 0 {
		f.Guests = DefaultGuests
	}
	if strings.TrimSpace(f.AttractionType) == "" {
		f.AttractionType = DefaultAttractionType
	}
	return f
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

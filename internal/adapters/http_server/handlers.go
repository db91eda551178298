package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tripplanner/internal/adapters/pdf"
	"tripplanner/internal/app"
	"tripplanner/internal/domain"
)

// TripService is the part of app.Planner the API needs.
type TripService interface {
	Plan(ctx context.Context, form domain.SearchForm) domain.TripResult
	Explore(ctx context.Context, q app.Query) (domain.TripResult, []string, error)
	WeatherToday(ctx context.Context, city string) []domain.WeatherEntry
	DayPlan(city, typ string, days int) ([]domain.AttractionStop, error)
	Today() time.Time
}

type Handlers struct{ Trips TripService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// TripRequest is the itinerary request body. Optional fields are pointers so an
// absent value can be told apart from an explicit empty one.
type TripRequest struct {
	City           string  `json:"city"`
	Location       string  `json:"location"`
	Days           int     `json:"days"`
	Guests         *int    `json:"guests"`
	Budget         *string `json:"budget"`
	Transport      string  `json:"transport"`
	Purpose        string  `json:"purpose"`
	AttractionType *string `json:"attraction_type"`
}

const (
	defaultDays   = 3
	defaultBudget = 15000
)

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.root)
	s.mux.Get("/api/health", h.health)
	s.mux.Post("/api/trip", h.trip)
	s.mux.Post("/api/trip/pdf", h.tripPDF)
	s.mux.Get("/api/weather/{city}", h.weather)
	s.mux.Get("/api/hotels", h.hotels)
	s.mux.Get("/api/restaurants/{city}", h.restaurants)
	s.mux.Get("/api/attractions", h.attractions)
	s.mux.Get("/api/sample-data", h.sampleData)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("marshal response failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// form turns a request into planner input. The city is the first comma segment of
// location when one is given.
func (req TripRequest) form() (domain.SearchForm, error) {
	city := strings.TrimSpace(req.City)
	if loc := strings.TrimSpace(req.Location); loc != "" {
		city = strings.TrimSpace(strings.Split(loc, ",")[0])
	}
	if city == "" {
		return domain.SearchForm{}, fmt.Errorf("city or location is required")
	}
	if req.Days < 1 {
		return domain.SearchForm{}, fmt.Errorf("days must be at least 1")
	}
	f := domain.SearchForm{
		City:           city,
		Location:       req.Location,
		Days:           req.Days,
		Guests:         app.DefaultGuests,
		Budget:         app.DefaultBudget,
		AttractionType: app.DefaultAttractionType,
	}
	if req.Guests != nil && *req.Guests > 0 {
		f.Guests = *req.Guests
	}
	if req.Budget != nil {
		f.Budget = *req.Budget
	}
	if req.AttractionType != nil && strings.TrimSpace(*req.AttractionType) != "" {
		f.AttractionType = *req.AttractionType
	}
	return f, nil
}

func decodeTrip(w http.ResponseWriter, r *http.Request) (domain.SearchForm, bool) {
	var req TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return domain.SearchForm{}, false
	}
	f, err := req.form()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid trip request", err.Error())
		return domain.SearchForm{}, false
	}
	return f, true
}

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Travel Planning API is running"})
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
}

func (h *Handlers) trip(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	log.Info().Str("city", f.City).Int("days", f.Days).Str("budget", f.Budget).Msg("processing trip request")

	res := h.Trips.Plan(r.Context(), f)
	if res.Weather == nil || res.Hotels == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Error generating trip plan: result missing required fields (weather or hotels)")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) tripPDF(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	res := h.Trips.Plan(r.Context(), f)
	body, err := pdf.Render(pdf.Itinerary{
		City: f.City, Days: f.Days, Guests: f.Guests, Budget: f.Budget,
		GeneratedAt: time.Now(),
		Result:      res,
	})
	if err != nil {
		log.Error().Err(err).Str("city", f.City).Msg("render itinerary pdf failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Error generating itinerary PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%s.pdf"`, uuid.New().String()))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write pdf body failed")
	}
}

func (h *Handlers) weather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	writeJSON(w, http.StatusOK, map[string]any{"weather": h.Trips.WeatherToday(r.Context(), city)})
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}
	days, err := queryInt(r, "days", defaultDays)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	budget := float64(defaultBudget)
	if s := r.URL.Query().Get("budget"); s != "" {
		if budget, err = strconv.ParseFloat(s, 64); err != nil || budget < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid query", "budget must be a non-negative number")
			return
		}
	}

	res, _, err := h.Trips.Explore(r.Context(), app.Query{City: city, Type: app.DefaultAttractionType, Budget: budget, Days: days, Guests: app.DefaultGuests})
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("hotel lookup failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Error fetching hotels: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": res.Hotels})
}

func (h *Handlers) restaurants(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	res, _, err := h.Trips.Explore(r.Context(), app.Query{City: city, Type: app.DefaultAttractionType, Budget: defaultBudget, Days: defaultDays, Guests: app.DefaultGuests})
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("restaurant lookup failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Error fetching restaurants: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"restaurants": res.Restaurants})
}

func (h *Handlers) attractions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := strings.TrimSpace(q.Get("city"))
	if city == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}
	typ := q.Get("type")
	if typ == "" {
		typ = app.DefaultAttractionType
	}
	days, err := queryInt(r, "days", defaultDays)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	stops, err := h.Trips.DayPlan(city, typ, days)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("day plan failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Error planning attractions: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attractions": stops})
}

func (h *Handlers) sampleData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, app.SampleData(h.Trips.Today()))
}

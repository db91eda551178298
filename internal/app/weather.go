package app

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"tripplanner/internal/domain"
)

const weatherLayout = "2006-01-02 15:04:05"

// SameDay keeps the forecast steps whose calendar date in loc equals day's, in input order.
func SameDay(points []domain.ForecastPoint, day time.Time, loc *time.Location) []domain.WeatherEntry {
	want := day.In(loc).Format(time.DateOnly)
	out := make([]domain.WeatherEntry, 0, len(points))
	for _, p := range points {
		at := p.At.In(loc)
		if at.Format(time.DateOnly) != want {
			continue
		}
		out = append(out, domain.WeatherEntry{
			DateTime:    at.Format(weatherLayout),
			Temperature: p.Temperature,
			Description: capitalize(p.Description),
			Humidity:    p.Humidity,
		})
	}
	return out
}

// capitalize upper-cases the first letter and lower-cases the rest ("light Rain" -> "Light rain").
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}

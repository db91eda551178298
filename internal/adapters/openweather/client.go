// Package openweather adapts the OpenWeatherMap 5-day / 3-hour forecast API.
package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"tripplanner/internal/adapters/upstream"
	"tripplanner/internal/domain"
)

const DefaultBase = "https://api.openweathermap.org/data/2.5"

type Client struct {
	base string
	key  string
	up   *upstream.Client
}

func New(base, key string, up *upstream.Client) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{base: strings.TrimRight(base, "/"), key: key, up: up}
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Forecast returns every forecast step for the city in provider (chronological) order.
func (c *Client) Forecast(ctx context.Context, city string) ([]domain.ForecastPoint, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.key)
	q.Set("units", "metric")

	var fr forecastResponse
	if err := c.up.GetJSON(ctx, "forecast", fmt.Sprintf("%s/forecast?%s", c.base, q.Encode()), &fr); err != nil {
		return nil, err
	}

	out := make([]domain.ForecastPoint, 0, len(fr.List))
	for _, f := range fr.List {
		p := domain.ForecastPoint{
			At:          time.Unix(f.Dt, 0),
			Temperature: f.Main.Temp,
			Humidity:    f.Main.Humidity,
		}
		if len(f.Weather) > 0 {
			p.Description = f.Weather[0].Description
		}
		out = append(out, p)
	}
	return out, nil
}

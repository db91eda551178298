// Package booking adapts the Booking.com (RapidAPI) search-by-coordinates endpoint.
package booking

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tripplanner/internal/adapters/upstream"
	"tripplanner/internal/domain"
)

const (
	DefaultBase = "https://booking-com.p.rapidapi.com"
	DefaultHost = "booking-com.p.rapidapi.com"
)

type Client struct {
	base     string
	currency string
	up       *upstream.Client
}

// Headers returns the RapidAPI auth headers for upstream.Options.
func Headers(key, host string) http.Header {
	if host == "" {
		host = DefaultHost
	}
	h := http.Header{}
	h.Set("X-RapidAPI-Key", key)
	h.Set("X-RapidAPI-Host", host)
	return h
}

func New(base, currency string, up *upstream.Client) *Client {
	if base == "" {
		base = DefaultBase
	}
	if currency == "" {
		currency = "INR"
	}
	return &Client{base: strings.TrimRight(base, "/"), currency: currency, up: up}
}

func (c *Client) SearchByCoordinates(ctx context.Context, q domain.HotelQuery) ([]map[string]any, error) {
	adults := q.Adults
	if adults <= 0 {
		adults = 2
	}
	v := url.Values{}
	v.Set("latitude", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	v.Set("longitude", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	v.Set("checkin_date", q.CheckIn.Format("2006-01-02"))
	v.Set("checkout_date", q.CheckOut.Format("2006-01-02"))
	v.Set("adults_number", strconv.Itoa(adults))
	v.Set("locale", "en-us")
	v.Set("filter_by_currency", c.currency)
	v.Set("order_by", "distance")
	v.Set("room_number", "1")
	v.Set("units", "metric")

	var out struct {
		Result []map[string]any `json:"result"`
	}
	u := fmt.Sprintf("%s/v1/hotels/search-by-coordinates?%s", c.base, v.Encode())
	if err := c.up.GetJSON(ctx, "search-by-coordinates", u, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// Package places adapts the Google Places nearby-search API.
package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tripplanner/internal/adapters/upstream"
)

const (
	DefaultBase   = "https://maps.googleapis.com/maps/api/place"
	DefaultRadius = 1500
)

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

// Places answers 200 even when a request is rejected; the verdict is in "status".
type nearbyResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message"`
	Results      []map[string]any `json:"results"`
}

func (c *Client) NearbyRestaurants(ctx context.Context, lat, lon float64, radius int) ([]map[string]any, error) {
	if radius <= 0 {
		radius = DefaultRadius
	}
	v := url.Values{}
	v.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lon, 'f', -1, 64))
	v.Set("radius", strconv.Itoa(radius))
	v.Set("type", "restaurant")
	v.Set("key", c.key)

	var nr nearbyResponse
	if err := c.up.GetJSON(ctx, "nearbysearch", fmt.Sprintf("%s/nearbysearch/json?%s", c.base, v.Encode()), &nr); err != nil {
		return nil, err
	}
	switch nr.Status {
	case "", "OK", "ZERO_RESULTS":
		return nr.Results, nil
	}
	return nil, fmt.Errorf("places: status %s: %s", nr.Status, nr.ErrorMessage)
}

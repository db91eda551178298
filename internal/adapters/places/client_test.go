package places_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripplanner/internal/adapters/places"
	"tripplanner/internal/adapters/upstream"
)

func TestNearbyRestaurants(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/nearbysearch/json" || q.Get("location") != "27.1751,78.0421" ||
			q.Get("radius") != "1500" || q.Get("type") != "restaurant" || q.Get("key") != "gk" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"name":"Pinch of Spice","rating":4.4,"price_level":2,"types":["restaurant","food"]}]}`))
	}))
	defer ts.Close()

	cl := places.New(ts.URL, "gk", upstream.New("places", upstream.Options{}))
	got, err := cl.NearbyRestaurants(context.Background(), 27.1751, 78.0421, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Pinch of Spice" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestNearbyRestaurants_DeniedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`))
	}))
	defer ts.Close()

	cl := places.New(ts.URL, "bad", upstream.New("places", upstream.Options{}))
	if _, err := cl.NearbyRestaurants(context.Background(), 1, 2, 500); err == nil {
		t.Fatalf("expected error for REQUEST_DENIED")
	}
}

func TestNearbyRestaurants_ZeroResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer ts.Close()

	cl := places.New(ts.URL, "gk", upstream.New("places", upstream.Options{}))
	got, err := cl.NearbyRestaurants(context.Background(), 1, 2, 500)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result without error, got %+v / %v", got, err)
	}
}

// Package upstream is the shared JSON-over-HTTP transport used by the provider adapters.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripplanner/internal/adapters/observability"
)

var (
	ErrNotFound     = errors.New("upstream: not found")
	ErrUnauthorized = errors.New("upstream: unauthorized")
	ErrForbidden    = errors.New("upstream: forbidden")
)

// StatusError is any non-2xx reply. errors.Is maps 404/401/403 onto the sentinels above.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: bad status %d", e.Service, e.Code)
	}
	return fmt.Sprintf("%s: bad status %d: %s", e.Service, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	}
	return false
}

type Options struct {
	Timeout time.Duration // zero means 10s
	RPS     int           // client-side limit; <= 0 is unlimited
	Header  http.Header   // sent on every request (API keys, host headers)
}

type Client struct {
	service string
	hc      *http.Client
	rl      *rate.Limiter
	header  http.Header
}

func New(service string, o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	lim := rate.NewLimiter(rate.Inf, 0)
	if o.RPS > 0 {
		lim = rate.NewLimiter(rate.Limit(o.RPS), o.RPS)
	}
	return &Client{
		service: service,
		hc:      &http.Client{Timeout: o.Timeout},
		rl:      lim,
		header:  o.Header.Clone(),
	}
}

func (c *Client) Service() string { return c.service }

// GetJSON performs one GET and decodes a 2xx body into out. There are no retries:
// a failed call is final for the request that made it.
func (c *Client) GetJSON(ctx context.Context, endpoint, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tripplanner/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.service, endpoint, 0, time.Since(start))
		observability.ObserveExternalError(c.service, err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", c.service, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.service, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Service: c.service, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", c.service, endpoint, err)
	}
	return nil
}

package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NoRating is how an unknown rating is rendered in JSON.
const NoRating = "No rating"

// Rating is either a numeric score or unknown. Unknown orders below every numeric value.
type Rating struct {
	value float64
	known bool
}

func NumericRating(v float64) Rating { return Rating{value: v, known: true} }

func UnknownRating() Rating { return Rating{} }

// ParseRating accepts provider values: numbers, numeric strings, or anything else as unknown.
func ParseRating(v any) Rating {
	switch t := v.(type) {
	case float64:
		return NumericRating(t)
	case float32:
		return NumericRating(float64(t))
	case int:
		return NumericRating(float64(t))
	case int64:
		return NumericRating(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return NumericRating(f)
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return NumericRating(f)
		}
	}
	return UnknownRating()
}

func (r Rating) Value() (float64, bool) { return r.value, r.known }

func (r Rating) Known() bool { return r.known }

// Compare returns -1, 0 or +1. Any two unknown ratings are equal.
func (r Rating) Compare(o Rating) int {
	switch {
	case !r.known && !o.known:
		return 0
	case !r.known:
		return -1
	case !o.known:
		return 1
	case r.value < o.value:
		return -1
	case r.value > o.value:
		return 1
	}
	return 0
}

func (r Rating) String() string {
	if !r.known {
		return NoRating
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.known {
		return json.Marshal(NoRating)
	}
	return json.Marshal(r.value)
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = UnknownRating()
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = ParseRating(v)
	return nil
}

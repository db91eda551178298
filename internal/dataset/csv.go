package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tripplanner/internal/domain"
)

// header aliases, lower-cased; the first column found wins
var columnAliases = map[string][]string{
	"city":    {"city"},
	"type":    {"type", "category"},
	"name":    {"name", "attraction"},
	"fee":     {"entrance fee in inr", "entrance fee", "entrance_fee", "fee"},
	"lat":     {"latitude", "lat"},
	"lon":     {"longitude", "lon", "lng"},
	"reviews": {"number of google review in lakhs", "reviews", "review_volume", "reviews_lakhs"},
}

var requiredColumns = []string{"city", "type", "name", "lat", "lon"}

func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("rows", len(rows)).Msg("attraction dataset loaded")
	return New(rows), nil
}

// ReadCSV parses attraction rows. Blank fee and review cells read as zero.
func ReadCSV(r io.Reader) ([]domain.Attraction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset")
		}
		return nil, err
	}
	idx := indexColumns(header)
	for _, k := range requiredColumns {
		if _, ok := idx[k]; !ok {
			return nil, fmt.Errorf("missing column %q", k)
		}
	}

	var out []domain.Attraction
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cell := func(k string) string {
			i, ok := idx[k]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		a := domain.Attraction{City: cell("city"), Type: cell("type"), Name: cell("name")}
		nums := []struct {
			key      string
			dst      *float64
			required bool
		}{
			{"fee", &a.EntranceFee, false},
			{"lat", &a.Lat, true},
			{"lon", &a.Lon, true},
			{"reviews", &a.Reviews, false},
		}
		for _, n := range nums {
			s := cell(n.key)
			if s == "" && !n.required {
				continue
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %s: %w", line, n.key, err)
			}
			*n.dst = f
		}
		out = append(out, a)
	}
	return out, nil
}

func indexColumns(header []string) map[string]int {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	idx := make(map[string]int, len(columnAliases))
	for key, aliases := range columnAliases {
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				idx[key] = i
				break
			}
		}
	}
	return idx
}

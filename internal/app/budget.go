package app

import (
	"fmt"
	"strconv"
	"strings"

	"tripplanner/internal/domain"
)

var budgetNoise = strings.NewReplacer("₹", "", "$", "", "€", "", "£", "", ",", "", " ", "", "+", "")

// ParseBudget returns the budget ceiling. "₹7,500-₹15,000" is 15000, "₹37,500+" is 37500.
func ParseBudget(s string) (float64, error) {
	parts := strings.Split(s, "-")
	raw := parts[0]
	if len(parts) > 1 {
		raw = parts[1]
	}
	clean := budgetNoise.Replace(strings.TrimSpace(raw))
	if clean == "" {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidBudget, s)
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidBudget, s)
	}
	return v, nil
}

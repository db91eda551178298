package domain

import "errors"

var (
	ErrDatasetUnavailable = errors.New("attraction dataset unavailable")
	ErrInvalidBudget      = errors.New("invalid budget")
)

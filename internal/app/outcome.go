package app

import "tripplanner/internal/domain"

type OutcomeKind int

const (
	Success OutcomeKind = iota
	PartialFailure
	Fatal
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case PartialFailure:
		return "partial"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Outcome is the raw aggregation result before fallback normalization.
// Reason is set only for Fatal; Warnings only for PartialFailure.
type Outcome struct {
	Kind     OutcomeKind
	Result   domain.TripResult
	Warnings []string
	Reason   error
}

func succeeded(res domain.TripResult, warnings []string) Outcome {
	if len(warnings) > 0 {
		return Outcome{Kind: PartialFailure, Result: res, Warnings: warnings}
	}
	return Outcome{Kind: Success, Result: res}
}

func failed(reason error) Outcome { return Outcome{Kind: Fatal, Reason: reason} }

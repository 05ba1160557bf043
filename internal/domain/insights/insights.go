// Package insights wraps the external attendance summarization capability.
// The summarizer is read-only over attendance data and strictly best-effort:
// a missing key, timeout or malformed reply degrades to ErrUnavailable and
// never affects check-in, check-out or payroll.
package insights

import (
	"context"
	"errors"

	"attendflow/internal/domain/attendance"
)

var ErrUnavailable = errors.New("insights unavailable")

type Report struct {
	Summary         string   `json:"summary"`
	Trends          []string `json:"trends"`
	Recommendations []string `json:"recommendations"`
}

// Summarizer analyzes the attendance collection. Implementations return
// ErrUnavailable (possibly wrapped) when no insights can be produced.
type Summarizer interface {
	Summarize(ctx context.Context, records []attendance.Record) (*Report, error)
}

// Disabled is the summarizer used when no API key is configured.
type Disabled struct{}

func (Disabled) Summarize(context.Context, []attendance.Record) (*Report, error) {
	return nil, ErrUnavailable
}

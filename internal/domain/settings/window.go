package settings

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

var ErrNotFound = errors.New("settings not found")

// Window is the weekly span, inclusive on both ends, in which supervisors
// may submit requests. Start after End wraps over the weekend, e.g.
// SEXTA..SEGUNDA.
type Window struct {
	Start Weekday
	End   Weekday
}

func WindowOf(s *models.Settings) Window {
	return Window{
		Start: Weekday(s.SubmissionStartDay),
		End:   Weekday(s.SubmissionEndDay),
	}
}

func (w Window) Validate() error {
	ve := httperr.NewValidation()
	if !w.Start.Valid() {
		ve.Add("submissionStartDay", "Dia inicial inválido.")
	}
	if !w.End.Valid() {
		ve.Add("submissionEndDay", "Dia final inválido.")
	}
	return ve.Err()
}

func (w Window) Contains(day time.Weekday) bool {
	start, end, d := int(w.Start.Time()), int(w.End.Time()), int(day)
	if start <= end {
		return d >= start && d <= end
	}
	return d >= start || d <= end
}

type Repository interface {
	// Get returns ErrNotFound when the row was never created.
	Get(ctx context.Context) (*models.Settings, error)
	// Upsert writes the singleton row, creating it on first use.
	Upsert(ctx context.Context, s *models.Settings) error
}

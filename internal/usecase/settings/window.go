package settings

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/timezone"
)

type WindowStatusOutput struct {
	Configured bool           `json:"configured"`
	Open       bool           `json:"open"`
	StartDay   domain.Weekday `json:"startDay,omitempty"`
	EndDay     domain.Weekday `json:"endDay,omitempty"`
	Today      domain.Weekday `json:"today"`
	Date       string         `json:"date"`
}

// WindowStatus tells whether supervisors can submit requests right now.
// Without saved settings the window is always open.
type WindowStatus struct {
	settings *GetSettings
	tz       string
	now      func() time.Time
}

func NewWindowStatus(settings *GetSettings, tz string) *WindowStatus {
	return &WindowStatus{settings: settings, tz: tz, now: time.Now}
}

func (uc *WindowStatus) Execute(ctx context.Context) (*WindowStatusOutput, error) {
	local := uc.now().In(timezone.Location(uc.tz))

	out := &WindowStatusOutput{
		Open:  true,
		Today: domain.FromTime(local.Weekday()),
		Date:  local.Format("2006-01-02"),
	}

	s, err := uc.settings.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	w := domain.WindowOf(s)
	out.Configured = true
	out.StartDay = w.Start
	out.EndDay = w.End
	out.Open = w.Contains(local.Weekday())
	return out, nil
}

func (uc *WindowStatus) IsOpen(ctx context.Context) (bool, error) {
	st, err := uc.Execute(ctx)
	if err != nil {
		return false, err
	}
	return st.Open, nil
}

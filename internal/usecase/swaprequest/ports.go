package swaprequest

import (
	"context"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
)

type Auditor interface {
	Dispatch(e audit.Entry)
}

// SubmissionWindow reports whether supervisors may submit right now.
type SubmissionWindow interface {
	IsOpen(ctx context.Context) (bool, error)
}

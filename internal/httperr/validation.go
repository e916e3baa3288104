package httperr

import (
	"errors"
	"strings"
)

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of a payload instead of
// stopping at the first one.
type ValidationError struct {
	Issues []FieldIssue
}

func NewValidation() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Message: message})
}

func (e *ValidationError) HasIssues() bool {
	return e != nil && len(e.Issues) > 0
}

func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, is := range e.Issues {
		if is.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil when nothing was collected, so callers can
// `return v.Err()` without a typed-nil interface.
func (e *ValidationError) Err() error {
	if !e.HasIssues() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

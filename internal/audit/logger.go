package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const (
	ActionLogin             = "user_login"
	ActionUserCreated       = "user_created"
	ActionUserUpdated       = "user_updated"
	ActionSwapCreated       = "swap_request_created"
	ActionSwapStatusUpdated = "swap_request_status_updated"
	ActionSettingsUpdated   = "settings_updated"
	ResourceUser            = "user"
	ResourceSwapRequest     = "swap_request"
	ResourceSettings        = "settings"
)

type Entry struct {
	UserID              uint
	UserLoginIdentifier string
	Action              string
	TargetResourceType  string
	TargetResourceID    *uint
	// Details is stored as-is when it is a string, JSON-encoded otherwise.
	Details any
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, e Entry) error {
	return l.db.WithContext(ctx).Create(e.toModel()).Error
}

func (e Entry) toModel() *models.AuditLog {
	row := &models.AuditLog{
		Action:              e.Action,
		UserID:              e.UserID,
		UserLoginIdentifier: e.UserLoginIdentifier,
		TargetResourceID:    e.TargetResourceID,
	}

	if e.TargetResourceType != "" {
		t := e.TargetResourceType
		row.TargetResourceType = &t
	}

	switch d := e.Details.(type) {
	case nil:
	case string:
		if d != "" {
			row.Details = &d
		}
	default:
		if b, err := json.Marshal(d); err == nil {
			s := string(b)
			row.Details = &s
		}
	}

	return row
}

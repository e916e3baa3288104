package swaprequest

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

var ErrNotFound = errors.New("swap request not found")

type SortField string

const (
	SortSwapDate  SortField = "swapDate"
	SortCreatedAt SortField = "createdAt"
	SortStatus    SortField = "status"
)

type ListFilter struct {
	SubmittedByID  *uint
	Status         *Status
	EventType      *EventType
	Group          *ReliefGroup
	From           *time.Time
	To             *time.Time
	IncludeMirrors bool

	SortBy   SortField
	SortDesc bool
	Page     int
	Limit    int
}

type Repository interface {
	// Create inserts req and, when mirror is non-nil, the mirror row in the
	// same transaction, linking both through RelatedRequestID.
	Create(
		ctx context.Context,
		req *models.SwapRequest,
		mirror *models.SwapRequest,
	) error

	// GetByID returns ErrNotFound for unknown ids.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.SwapRequest, error)

	List(
		ctx context.Context,
		filter ListFilter,
	) ([]models.SwapRequest, int64, error)

	// UpdateStatus locks the request, runs guard against its current state
	// and changes the status of the request and of its linked pair in one
	// transaction. observation is left untouched when nil.
	UpdateStatus(
		ctx context.Context,
		id uint,
		guard func(current *models.SwapRequest) error,
		status Status,
		observation *string,
	) (*models.SwapRequest, error)
}

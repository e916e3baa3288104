package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrLoginTaken = errors.New("login identifier already in use")
)

type ListFilter struct {
	Role   *Role
	Active *bool
	// Query matches name or login identifier, case-insensitively.
	Query string
}

type Repository interface {
	// Create returns ErrLoginTaken when the identifier is in use.
	Create(ctx context.Context, u *models.User) error
	// Save writes every mutable column of an existing user.
	Save(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	List(ctx context.Context, filter ListFilter) ([]models.User, error)
}

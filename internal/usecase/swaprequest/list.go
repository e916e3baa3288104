package swaprequest

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListSwapRequests struct {
	repo domain.Repository
}

func NewListSwapRequests(repo domain.Repository) *ListSwapRequests {
	return &ListSwapRequests{repo: repo}
}

// Execute scopes supervisors to their own submissions; administrators
// see every request.
func (uc *ListSwapRequests) Execute(
	ctx context.Context,
	actor user.Actor,
	filter domain.ListFilter,
) ([]models.SwapRequest, int64, error) {

	switch actor.Role {
	case user.RoleAdministrador:
	case user.RoleEncarregado:
		id := actor.ID
		filter.SubmittedByID = &id
	default:
		return nil, 0, httperr.ErrBusiness("forbidden_role")
	}

	return uc.repo.List(ctx, filter)
}

// ======================================================
// GET
// ======================================================

type GetSwapRequest struct {
	repo domain.Repository
}

func NewGetSwapRequest(repo domain.Repository) *GetSwapRequest {
	return &GetSwapRequest{repo: repo}
}

func (uc *GetSwapRequest) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
) (*models.SwapRequest, error) {

	if !actor.Role.Valid() {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("swap_request_not_found")
		}
		return nil, err
	}

	// Supervisors never learn that someone else's request exists.
	if actor.Is(user.RoleEncarregado) && req.SubmittedByID != actor.ID {
		return nil, httperr.ErrBusiness("swap_request_not_found")
	}

	return req, nil
}

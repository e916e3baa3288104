package swaprequest

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type UpdateStatusInput struct {
	Actor       user.Actor
	ID          uint
	Status      string
	Observation *string
}

type UpdateSwapRequestStatus struct {
	repo  domain.Repository
	audit Auditor
}

func NewUpdateSwapRequestStatus(repo domain.Repository, auditor Auditor) *UpdateSwapRequestStatus {
	return &UpdateSwapRequestStatus{repo: repo, audit: auditor}
}

// Execute closes a scheduled request. The linked mirror row, if any,
// follows the same status.
func (uc *UpdateSwapRequestStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.SwapRequest, error) {

	if !in.Actor.Is(user.RoleAdministrador) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	to := domain.Status(strings.ToUpper(strings.TrimSpace(in.Status)))
	if !to.Valid() {
		ve := httperr.NewValidation()
		ve.Add("status", "Status inválido.")
		return nil, ve
	}

	var from domain.Status
	guard := func(cur *models.SwapRequest) error {
		from = domain.Status(cur.Status)
		return domain.CanTransition(from, to)
	}

	updated, err := uc.repo.UpdateStatus(ctx, in.ID, guard, to, in.Observation)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("swap_request_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:              in.Actor.ID,
		UserLoginIdentifier: in.Actor.Login,
		Action:              audit.ActionSwapStatusUpdated,
		TargetResourceType:  audit.ResourceSwapRequest,
		TargetResourceID:    &updated.ID,
		Details: map[string]string{
			"from": string(from),
			"to":   string(to),
		},
	})

	return updated, nil
}

package swaprequest

import (
	"context"
	"time"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
	"github.com/BruksfildServices01/escala-trocas/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Actor user.Actor

	EmployeeIDOut    string
	EmployeeIDIn     string
	SwapDate         string
	PaybackDate      string
	EmployeeFunction string
	GroupOut         string
	GroupIn          string
	Observation      *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSwapRequest struct {
	repo   domain.Repository
	window SubmissionWindow
	audit  Auditor
	tz     string
	now    func() time.Time
}

// NewCreateSwapRequest accepts a nil window, in which case submissions
// are never blocked by the calendar.
func NewCreateSwapRequest(
	repo domain.Repository,
	window SubmissionWindow,
	auditor Auditor,
	tz string,
) *CreateSwapRequest {
	return &CreateSwapRequest{
		repo:   repo,
		window: window,
		audit:  auditor,
		tz:     tz,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSwapRequest) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.SwapRequest, error) {

	// --------------------------------------------------
	// 1. Papel (antes de qualquer acesso ao banco)
	// --------------------------------------------------
	if !in.Actor.Is(user.RoleEncarregado) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	// --------------------------------------------------
	// 2. Regras do pedido
	// --------------------------------------------------
	today := timezone.DateOf(uc.now(), uc.tz)

	v, err := domain.Validate(domain.Candidate{
		EmployeeIDOut:    in.EmployeeIDOut,
		EmployeeIDIn:     in.EmployeeIDIn,
		SwapDate:         in.SwapDate,
		PaybackDate:      in.PaybackDate,
		EmployeeFunction: in.EmployeeFunction,
		GroupOut:         in.GroupOut,
		GroupIn:          in.GroupIn,
	}, today)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Janela de envio
	// --------------------------------------------------
	if uc.window != nil {
		open, err := uc.window.IsOpen(ctx)
		if err != nil {
			return nil, err
		}
		if !open {
			return nil, httperr.ErrBusiness("submission_window_closed")
		}
	}

	// --------------------------------------------------
	// 4. Pedido (+ espelho para TROCA) na mesma transação
	// --------------------------------------------------
	req := v.ToModel(in.Actor.ID)
	req.Observation = in.Observation

	var mirror *models.SwapRequest
	if domain.NeedsMirror(v.EventType) {
		mirror = domain.MirrorOf(req)
	}

	if err := uc.repo.Create(ctx, req, mirror); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	details := map[string]any{
		"eventType": req.EventType,
		"swapDate":  domain.FormatDate(req.SwapDate),
	}
	if mirror != nil {
		details["mirrorId"] = mirror.ID
	}

	uc.audit.Dispatch(audit.Entry{
		UserID:              in.Actor.ID,
		UserLoginIdentifier: in.Actor.Login,
		Action:              audit.ActionSwapCreated,
		TargetResourceType:  audit.ResourceSwapRequest,
		TargetResourceID:    &req.ID,
		Details:             details,
	})

	return req, nil
}

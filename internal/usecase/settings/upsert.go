package settings

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type UpsertSettingsInput struct {
	Actor              user.Actor
	SubmissionStartDay string
	SubmissionEndDay   string
}

type UpsertSettings struct {
	repo  domain.Repository
	cache Cache
	audit Auditor
}

func NewUpsertSettings(repo domain.Repository, cache Cache, auditor Auditor) *UpsertSettings {
	return &UpsertSettings{repo: repo, cache: cache, audit: auditor}
}

func (uc *UpsertSettings) Execute(ctx context.Context, in UpsertSettingsInput) (*models.Settings, error) {
	if !in.Actor.Is(user.RoleAdministrador) {
		return nil, httperr.ErrBusiness("forbidden_role")
	}

	w := domain.Window{
		Start: domain.Weekday(strings.ToUpper(strings.TrimSpace(in.SubmissionStartDay))),
		End:   domain.Weekday(strings.ToUpper(strings.TrimSpace(in.SubmissionEndDay))),
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s := &models.Settings{
		SubmissionStartDay: string(w.Start),
		SubmissionEndDay:   string(w.End),
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}

	id := s.ID
	uc.audit.Dispatch(audit.Entry{
		UserID:              in.Actor.ID,
		UserLoginIdentifier: in.Actor.Login,
		Action:              audit.ActionSettingsUpdated,
		TargetResourceType:  audit.ResourceSettings,
		TargetResourceID:    &id,
		Details: map[string]string{
			"submissionStartDay": s.SubmissionStartDay,
			"submissionEndDay":   s.SubmissionEndDay,
		},
	})

	return s, nil
}

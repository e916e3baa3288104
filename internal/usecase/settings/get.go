package settings

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

// Cache holds the settings row between reads. Misses and failures both
// report false.
type Cache interface {
	Get(ctx context.Context) (*models.Settings, bool)
	Set(ctx context.Context, s *models.Settings)
	Invalidate(ctx context.Context)
}

type Auditor interface {
	Dispatch(e audit.Entry)
}

// ======================================================
// GET
// ======================================================

type GetSettings struct {
	repo  domain.Repository
	cache Cache
}

// NewGetSettings accepts a nil cache.
func NewGetSettings(repo domain.Repository, cache Cache) *GetSettings {
	return &GetSettings{repo: repo, cache: cache}
}

// Load returns domain.ErrNotFound when settings were never saved.
func (uc *GetSettings) Load(ctx context.Context) (*models.Settings, error) {
	if uc.cache != nil {
		if s, ok := uc.cache.Get(ctx); ok {
			return s, nil
		}
	}

	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, s)
	}
	return s, nil
}

func (uc *GetSettings) Execute(ctx context.Context) (*models.Settings, error) {
	s, err := uc.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrBusiness("settings_not_found")
	}
	return s, err
}

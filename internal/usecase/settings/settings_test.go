package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

// ==================== Mocks ====================

type mockRepo struct {
	row     *models.Settings
	getErr  error
	gets    int
	upserts int
}

func (m *mockRepo) Get(ctx context.Context) (*models.Settings, error) {
	m.gets++
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.row == nil {
		return nil, domain.ErrNotFound
	}
	cp := *m.row
	return &cp, nil
}

func (m *mockRepo) Upsert(ctx context.Context, s *models.Settings) error {
	m.upserts++
	s.ID = models.SettingsID
	cp := *s
	m.row = &cp
	return nil
}

type mockCache struct {
	row         *models.Settings
	sets        int
	invalidated int
}

func (m *mockCache) Get(ctx context.Context) (*models.Settings, bool) {
	if m.row == nil {
		return nil, false
	}
	return m.row, true
}

func (m *mockCache) Set(ctx context.Context, s *models.Settings) {
	m.sets++
	m.row = s
}

func (m *mockCache) Invalidate(ctx context.Context) {
	m.invalidated++
	m.row = nil
}

type mockAuditor struct {
	entries []audit.Entry
}

func (m *mockAuditor) Dispatch(e audit.Entry) {
	m.entries = append(m.entries, e)
}

var admin = user.Actor{ID: 1, Login: "admin", Role: user.RoleAdministrador}

// ==================== Get ====================

func TestGetSettings_NotFound(t *testing.T) {
	uc := NewGetSettings(&mockRepo{}, nil)

	_, err := uc.Execute(context.Background())
	assert.True(t, httperr.IsBusiness(err, "settings_not_found"))
}

func TestGetSettings_UsesCache(t *testing.T) {
	repo := &mockRepo{row: &models.Settings{ID: 1, SubmissionStartDay: "SEGUNDA", SubmissionEndDay: "QUARTA"}}
	cache := &mockCache{}
	uc := NewGetSettings(repo, cache)
	ctx := context.Background()

	_, err := uc.Execute(ctx)
	require.NoError(t, err)
	s, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, "SEGUNDA", s.SubmissionStartDay)
	assert.Equal(t, 1, repo.gets)
	assert.Equal(t, 1, cache.sets)
}

func TestGetSettings_RepoFailure(t *testing.T) {
	boom := errors.New("db down")
	uc := NewGetSettings(&mockRepo{getErr: boom}, nil)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ==================== Upsert ====================

func TestUpsertSettings_Success(t *testing.T) {
	repo := &mockRepo{}
	cache := &mockCache{row: &models.Settings{ID: 1, SubmissionStartDay: "DOMINGO", SubmissionEndDay: "DOMINGO"}}
	aud := &mockAuditor{}
	uc := NewUpsertSettings(repo, cache, aud)

	s, err := uc.Execute(context.Background(), UpsertSettingsInput{
		Actor:              admin,
		SubmissionStartDay: " segunda",
		SubmissionEndDay:   "QUINTA",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SettingsID, s.ID)
	assert.Equal(t, "SEGUNDA", s.SubmissionStartDay)
	assert.Equal(t, "QUINTA", s.SubmissionEndDay)
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.row)

	require.Len(t, aud.entries, 1)
	assert.Equal(t, audit.ActionSettingsUpdated, aud.entries[0].Action)
	assert.Equal(t, audit.ResourceSettings, aud.entries[0].TargetResourceType)
}

func TestUpsertSettings_InvalidDays(t *testing.T) {
	repo := &mockRepo{}
	aud := &mockAuditor{}
	uc := NewUpsertSettings(repo, nil, aud)

	_, err := uc.Execute(context.Background(), UpsertSettingsInput{
		Actor:              admin,
		SubmissionStartDay: "MONDAY",
		SubmissionEndDay:   "",
	})

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.True(t, ve.Has("submissionStartDay"))
	assert.True(t, ve.Has("submissionEndDay"))
	assert.Equal(t, 0, repo.upserts)
	assert.Empty(t, aud.entries)
}

func TestUpsertSettings_RequiresAdmin(t *testing.T) {
	repo := &mockRepo{}
	uc := NewUpsertSettings(repo, nil, &mockAuditor{})

	_, err := uc.Execute(context.Background(), UpsertSettingsInput{
		Actor:              user.Actor{ID: 2, Role: user.RoleEncarregado},
		SubmissionStartDay: "SEGUNDA",
		SubmissionEndDay:   "SEXTA",
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden_role"))
	assert.Equal(t, 0, repo.upserts)
}

// ==================== Window ====================

func fixedWindowStatus(repo *mockRepo, now time.Time) *WindowStatus {
	uc := NewWindowStatus(NewGetSettings(repo, nil), "America/Sao_Paulo")
	uc.now = func() time.Time { return now }
	return uc
}

func TestWindowStatus_NotConfiguredIsOpen(t *testing.T) {
	// 2025-06-04 is a Wednesday.
	uc := fixedWindowStatus(&mockRepo{}, time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC))

	st, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Configured)
	assert.True(t, st.Open)
	assert.Equal(t, domain.Quarta, st.Today)
	assert.Equal(t, "2025-06-04", st.Date)
}

func TestWindowStatus_UsesOperationTimezone(t *testing.T) {
	repo := &mockRepo{row: &models.Settings{ID: 1, SubmissionStartDay: "SEGUNDA", SubmissionEndDay: "TERCA"}}

	// 02:00 UTC Wednesday is still Tuesday evening in Sao Paulo.
	uc := fixedWindowStatus(repo, time.Date(2025, 6, 4, 2, 0, 0, 0, time.UTC))
	st, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Configured)
	assert.True(t, st.Open)
	assert.Equal(t, domain.Terca, st.Today)

	uc = fixedWindowStatus(repo, time.Date(2025, 6, 4, 15, 0, 0, 0, time.UTC))
	open, err := uc.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)
}

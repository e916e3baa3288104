package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
	"github.com/BruksfildServices01/escala-trocas/internal/testutil"
)

func TestSettingsRepo_GetMissing(t *testing.T) {
	repo := NewSettingsGormRepository(testutil.NewDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsRepo_UpsertKeepsSingleRow(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSettingsGormRepository(db)
	ctx := context.Background()

	windows := [][2]domain.Weekday{
		{domain.Segunda, domain.Quarta},
		{domain.Quinta, domain.Sexta},
		{domain.Sexta, domain.Segunda},
	}

	for _, w := range windows {
		s := &models.Settings{ID: 99, SubmissionStartDay: string(w[0]), SubmissionEndDay: string(w[1])}
		require.NoError(t, repo.Upsert(ctx, s))
		assert.Equal(t, models.SettingsID, s.ID)
	}

	var count int64
	require.NoError(t, db.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(domain.Sexta), got.SubmissionStartDay)
	assert.Equal(t, string(domain.Segunda), got.SubmissionEndDay)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/settings"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	if err := r.db.WithContext(ctx).First(&s, models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Upsert always targets id 1, so repeated calls keep a single row.
// Concurrent writers are last-write-wins.
func (r *SettingsGormRepository) Upsert(ctx context.Context, s *models.Settings) error {
	s.ID = models.SettingsID

	db := r.db.WithContext(ctx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"submission_start_day", "submission_end_day", "updated_at"}),
	}).Create(s).Error; err != nil {
		return err
	}

	return db.First(s, models.SettingsID).Error
}

// Compile-time check
var _ domain.Repository = (*SettingsGormRepository)(nil)

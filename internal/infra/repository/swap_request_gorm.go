package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type SwapRequestGormRepository struct {
	db *gorm.DB
}

func NewSwapRequestGormRepository(db *gorm.DB) *SwapRequestGormRepository {
	return &SwapRequestGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *SwapRequestGormRepository) Create(
	ctx context.Context,
	req *models.SwapRequest,
	mirror *models.SwapRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(req).Error; err != nil {
			return err
		}

		if mirror == nil {
			return nil
		}

		mirror.RelatedRequestID = &req.ID
		if err := tx.Omit(clause.Associations).Create(mirror).Error; err != nil {
			return err
		}

		req.RelatedRequestID = &mirror.ID
		return tx.Model(req).Update("related_request_id", mirror.ID).Error
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *SwapRequestGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.SwapRequest, error) {

	var req models.SwapRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *SwapRequestGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.SwapRequest, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.SwapRequest{})

	if f.SubmittedByID != nil {
		q = q.Where("submitted_by_id = ?", *f.SubmittedByID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.EventType != nil {
		q = q.Where("event_type = ?", string(*f.EventType))
	}
	if f.Group != nil {
		q = q.Where("(group_out = ? OR group_in = ?)", string(*f.Group), string(*f.Group))
	}
	if f.From != nil {
		q = q.Where("swap_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("swap_date <= ?", *f.To)
	}
	if !f.IncludeMirrors {
		q = q.Where("is_mirror = ?", false)
	}

	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}

	var out []models.SwapRequest
	if err := base.
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn(f.SortBy)}, Desc: f.SortDesc}).
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func sortColumn(s domain.SortField) string {
	switch s {
	case domain.SortCreatedAt:
		return "created_at"
	case domain.SortStatus:
		return "status"
	default:
		return "swap_date"
	}
}

// --------------------------------------------------
// Status
// --------------------------------------------------

func (r *SwapRequestGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	guard func(current *models.SwapRequest) error,
	status domain.Status,
	observation *string,
) (*models.SwapRequest, error) {

	var updated models.SwapRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur models.SwapRequest
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cur, id).Error; err != nil {
			if IsNotFound(err) {
				return domain.ErrNotFound
			}
			return err
		}

		if guard != nil {
			if err := guard(&cur); err != nil {
				return err
			}
		}

		changes := map[string]any{"status": string(status)}
		if observation != nil {
			changes["observation"] = *observation
		}

		if err := tx.Model(&cur).Updates(changes).Error; err != nil {
			return err
		}

		if cur.RelatedRequestID != nil {
			if err := tx.
				Model(&models.SwapRequest{}).
				Where("id = ?", *cur.RelatedRequestID).
				Update("status", string(status)).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Compile-time check
var _ domain.Repository = (*SwapRequestGormRepository)(nil)

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/user"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if IsUniqueViolation(err) {
		return domain.ErrLoginTaken
	}
	return err
}

func (r *UserGormRepository) Save(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).
		Model(u).
		Select("name", "login_identifier", "password_hash", "role", "active").
		Updates(u).Error
	if IsUniqueViolation(err) {
		return domain.ErrLoginTaken
	}
	return err
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("login_identifier = ?", login).
		First(&u).Error; err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context, f domain.ListFilter) ([]models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})

	if f.Role != nil {
		q = q.Where("role = ?", string(*f.Role))
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR login_identifier LIKE ?)", like, like)
	}

	var out []models.User
	if err := q.Order("name ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)

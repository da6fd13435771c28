package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// NrcRepository provides access to course section records.
type NrcRepository interface {
	List(ctx context.Context) ([]models.Nrc, error)
	GetByID(ctx context.Context, id uint) (models.Nrc, error)
}

type nrcRepository struct {
	db *gorm.DB
}

// NewNrcRepository constructs a course section repository.
func NewNrcRepository(db *gorm.DB) NrcRepository {
	return &nrcRepository{db: db}
}

func (r *nrcRepository) List(ctx context.Context) ([]models.Nrc, error) {
	var nrcs []models.Nrc
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Preload("Materia").
		Order("id").
		Find(&nrcs).Error; err != nil {
		return nil, err
	}

	return nrcs, nil
}

func (r *nrcRepository) GetByID(ctx context.Context, id uint) (models.Nrc, error) {
	var nrc models.Nrc
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Preload("Materia").
		First(&nrc, id).Error; err != nil {
		return models.Nrc{}, err
	}

	return nrc, nil
}

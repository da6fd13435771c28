package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// JuradoRepository provides access to juror records.
type JuradoRepository interface {
	List(ctx context.Context) ([]models.Jurado, error)
	GetByID(ctx context.Context, id uint) (models.Jurado, error)
	GetByEmail(ctx context.Context, email string) (models.Jurado, error)
	Create(ctx context.Context, jurado *models.Jurado) error
	Update(ctx context.Context, jurado *models.Jurado) error
	SoftDelete(ctx context.Context, id uint) error
}

type juradoRepository struct {
	db *gorm.DB
}

// NewJuradoRepository constructs a juror repository.
func NewJuradoRepository(db *gorm.DB) JuradoRepository {
	return &juradoRepository{db: db}
}

func (r *juradoRepository) List(ctx context.Context) ([]models.Jurado, error) {
	var jurados []models.Jurado
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("id").
		Find(&jurados).Error; err != nil {
		return nil, err
	}

	return jurados, nil
}

func (r *juradoRepository) GetByID(ctx context.Context, id uint) (models.Jurado, error) {
	var jurado models.Jurado
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&jurado, id).Error; err != nil {
		return models.Jurado{}, err
	}

	return jurado, nil
}

func (r *juradoRepository) GetByEmail(ctx context.Context, email string) (models.Jurado, error) {
	var jurado models.Jurado
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("deleted = ?", false).
		First(&jurado).Error; err != nil {
		return models.Jurado{}, err
	}

	return jurado, nil
}

func (r *juradoRepository) Create(ctx context.Context, jurado *models.Jurado) error {
	return r.db.WithContext(ctx).Create(jurado).Error
}

func (r *juradoRepository) Update(ctx context.Context, jurado *models.Jurado) error {
	return r.db.WithContext(ctx).Save(jurado).Error
}

func (r *juradoRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Jurado{}).
		Where("id = ?", id).
		Where("deleted = ?", false).
		Update("deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

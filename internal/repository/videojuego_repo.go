package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// VideojuegoRepository provides access to game submission records.
type VideojuegoRepository interface {
	List(ctx context.Context) ([]models.Videojuego, error)
	GetByID(ctx context.Context, id uint) (models.Videojuego, error)
	Create(ctx context.Context, videojuego *models.Videojuego) error
	Update(ctx context.Context, videojuego *models.Videojuego) error
	SoftDelete(ctx context.Context, id uint) error
}

type videojuegoRepository struct {
	db *gorm.DB
}

// NewVideojuegoRepository constructs a game submission repository.
func NewVideojuegoRepository(db *gorm.DB) VideojuegoRepository {
	return &videojuegoRepository{db: db}
}

func (r *videojuegoRepository) List(ctx context.Context) ([]models.Videojuego, error) {
	var videojuegos []models.Videojuego
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("id").
		Find(&videojuegos).Error; err != nil {
		return nil, err
	}

	return videojuegos, nil
}

func (r *videojuegoRepository) GetByID(ctx context.Context, id uint) (models.Videojuego, error) {
	var videojuego models.Videojuego
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&videojuego, id).Error; err != nil {
		return models.Videojuego{}, err
	}

	return videojuego, nil
}

func (r *videojuegoRepository) Create(ctx context.Context, videojuego *models.Videojuego) error {
	return r.db.WithContext(ctx).Create(videojuego).Error
}

func (r *videojuegoRepository) Update(ctx context.Context, videojuego *models.Videojuego) error {
	return r.db.WithContext(ctx).Save(videojuego).Error
}

func (r *videojuegoRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Videojuego{}).
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

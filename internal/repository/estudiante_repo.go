package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// EstudianteRepository provides access to student records.
type EstudianteRepository interface {
	List(ctx context.Context) ([]models.Estudiante, error)
	GetByID(ctx context.Context, id uint) (models.Estudiante, error)
	Create(ctx context.Context, estudiante *models.Estudiante) error
	Update(ctx context.Context, estudiante *models.Estudiante) error
	SoftDelete(ctx context.Context, id uint) error
}

type estudianteRepository struct {
	db *gorm.DB
}

// NewEstudianteRepository constructs a student repository.
func NewEstudianteRepository(db *gorm.DB) EstudianteRepository {
	return &estudianteRepository{db: db}
}

func (r *estudianteRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Estudiante{}).
		Where("estudiantes.deleted = ?", false).
		Preload("Usuario").
		Preload("EstudianteNrcs", "deleted = ?", false).
		Preload("EstudianteNrcs.Nrc").
		Preload("EstudianteNrcs.Nrc.Materia")
}

func (r *estudianteRepository) List(ctx context.Context) ([]models.Estudiante, error) {
	var estudiantes []models.Estudiante
	if err := r.baseQuery(ctx).Order("estudiantes.id").Find(&estudiantes).Error; err != nil {
		return nil, err
	}

	return estudiantes, nil
}

func (r *estudianteRepository) GetByID(ctx context.Context, id uint) (models.Estudiante, error) {
	var estudiante models.Estudiante
	if err := r.baseQuery(ctx).First(&estudiante, id).Error; err != nil {
		return models.Estudiante{}, err
	}

	return estudiante, nil
}

func (r *estudianteRepository) Create(ctx context.Context, estudiante *models.Estudiante) error {
	return r.db.WithContext(ctx).Create(estudiante).Error
}

func (r *estudianteRepository) Update(ctx context.Context, estudiante *models.Estudiante) error {
	return r.db.WithContext(ctx).Save(estudiante).Error
}

func (r *estudianteRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Estudiante{}).
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

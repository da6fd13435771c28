package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// EquipoFilter narrows team listings. Each present field becomes an
// independent predicate fragment; fragments are OR-combined and the group is
// AND-ed with the base non-deleted condition.
type EquipoFilter struct {
	MateriaID *uint
	NrcID     *uint
}

// EquipoRepository defines data operations for teams.
type EquipoRepository interface {
	List(ctx context.Context, filter EquipoFilter) ([]models.Equipo, error)
	GetByID(ctx context.Context, id uint) (models.Equipo, error)
	GetByNombre(ctx context.Context, nombre string) (models.Equipo, error)
	Create(ctx context.Context, equipo *models.Equipo) error
	Update(ctx context.Context, equipo *models.Equipo) error
	SoftDeleteCascade(ctx context.Context, id uint) error
}

type equipoRepository struct {
	db *gorm.DB
}

// NewEquipoRepository constructs a team repository.
func NewEquipoRepository(db *gorm.DB) EquipoRepository {
	return &equipoRepository{db: db}
}

// activeEstudiantesPorMateria matches teams with at least one non-deleted
// student holding a non-deleted enrollment in a non-deleted section of the
// given course.
func (r *equipoRepository) activeEstudiantesPorMateria(materiaID uint) *gorm.DB {
	return r.db.Model(&models.Estudiante{}).
		Select("1").
		Joins("JOIN estudiante_nrcs ON estudiante_nrcs.estudiante_id = estudiantes.id AND estudiante_nrcs.deleted = ?", false).
		Joins("JOIN nrcs ON nrcs.id = estudiante_nrcs.nrc_id AND nrcs.deleted = ?", false).
		Where("estudiantes.equipo_id = equipos.id").
		Where("estudiantes.deleted = ?", false).
		Where("nrcs.materia_id = ?", materiaID)
}

// activeEstudiantesPorNrc matches teams with at least one non-deleted student
// holding a non-deleted enrollment referencing the exact section id.
func (r *equipoRepository) activeEstudiantesPorNrc(nrcID uint) *gorm.DB {
	return r.db.Model(&models.Estudiante{}).
		Select("1").
		Joins("JOIN estudiante_nrcs ON estudiante_nrcs.estudiante_id = estudiantes.id AND estudiante_nrcs.deleted = ?", false).
		Where("estudiantes.equipo_id = equipos.id").
		Where("estudiantes.deleted = ?", false).
		Where("estudiante_nrcs.nrc_id = ?", nrcID)
}

func (r *equipoRepository) List(ctx context.Context, filter EquipoFilter) ([]models.Equipo, error) {
	query := r.db.WithContext(ctx).Model(&models.Equipo{}).
		Where("equipos.deleted = ?", false)

	var group *gorm.DB
	if filter.MateriaID != nil {
		group = r.db.Where("EXISTS (?)", r.activeEstudiantesPorMateria(*filter.MateriaID))
	}
	if filter.NrcID != nil {
		fragment := r.db.Where("EXISTS (?)", r.activeEstudiantesPorNrc(*filter.NrcID))
		if group == nil {
			group = fragment
		} else {
			group = group.Or(fragment)
		}
	}
	if group != nil {
		query = query.Where(group)
	}

	query = query.
		Preload("Estudiantes", "deleted = ?", false).
		Preload("Estudiantes.Usuario").
		Preload("Estudiantes.EstudianteNrcs", "deleted = ?", false).
		Preload("Estudiantes.EstudianteNrcs.Nrc").
		Preload("Estudiantes.EstudianteNrcs.Nrc.Materia").
		Preload("Videojuegos", "deleted = ?", false)

	var equipos []models.Equipo
	if err := query.Find(&equipos).Error; err != nil {
		return nil, err
	}

	return equipos, nil
}

func (r *equipoRepository) GetByID(ctx context.Context, id uint) (models.Equipo, error) {
	var equipo models.Equipo
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		First(&equipo, id).Error; err != nil {
		return models.Equipo{}, err
	}

	return equipo, nil
}

func (r *equipoRepository) GetByNombre(ctx context.Context, nombre string) (models.Equipo, error) {
	var equipo models.Equipo
	if err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		Where("deleted = ?", false).
		First(&equipo).Error; err != nil {
		return models.Equipo{}, err
	}

	return equipo, nil
}

func (r *equipoRepository) Create(ctx context.Context, equipo *models.Equipo) error {
	return r.db.WithContext(ctx).Create(equipo).Error
}

func (r *equipoRepository) Update(ctx context.Context, equipo *models.Equipo) error {
	return r.db.WithContext(ctx).Save(equipo).Error
}

// SoftDeleteCascade marks the team's non-deleted videogames and students as
// deleted and then the team itself, all inside one transaction so a failure
// partway through cannot leave a partially-cascaded state. Returns
// gorm.ErrRecordNotFound when the team row was already deleted, which makes
// concurrent removals resolve to exactly one winner.
func (r *equipoRepository) SoftDeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Videojuego{}).
			Where("equipo_id = ?", id).
			Where("deleted = ?", false).
			Update("deleted", true).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Estudiante{}).
			Where("equipo_id = ?", id).
			Where("deleted = ?", false).
			Update("deleted", true).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Equipo{}).
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
	})
}

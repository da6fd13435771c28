package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// ResultadoVideojuego is one scoreboard row aggregated across every active
// evaluation of a videogame.
type ResultadoVideojuego struct {
	VideojuegoID      uint    `json:"videojuego_id"`
	Nombre            string  `json:"nombre"`
	Evaluaciones      int64   `json:"evaluaciones"`
	Promedio          float64 `json:"promedio"`
	PromedioPonderado float64 `json:"promedio_ponderado"`
}

// EvaluacionRepository reads and writes scoring data.
type EvaluacionRepository interface {
	ListDetallesByJurado(ctx context.Context, juradoID uint) ([]models.DetalleEvaluacion, error)
	ListDetallesByJuradoAndVideojuego(ctx context.Context, juradoID, videojuegoID uint) ([]models.DetalleEvaluacion, error)
	CreateEvaluacion(ctx context.Context, evaluacion *models.Evaluacion) error
	ListCriterios(ctx context.Context) ([]models.Criterio, error)
	ResumenPorVideojuego(ctx context.Context) ([]ResultadoVideojuego, error)
}

type evaluacionRepository struct {
	db *gorm.DB
}

// NewEvaluacionRepository constructs an evaluation repository.
func NewEvaluacionRepository(db *gorm.DB) EvaluacionRepository {
	return &evaluacionRepository{db: db}
}

// baseDetalles scopes detail rows to non-deleted details of non-deleted
// evaluations and carries the associations the aggregation paths reshape.
func (r *evaluacionRepository) baseDetalles(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.DetalleEvaluacion{}).
		Joins("JOIN evaluacions ON evaluacions.id = detalle_evaluacions.evaluacion_id AND evaluacions.deleted = ?", false).
		Where("detalle_evaluacions.deleted = ?", false).
		Preload("Evaluacion").
		Preload("Evaluacion.Videojuego").
		Preload("Criterio")
}

func (r *evaluacionRepository) ListDetallesByJurado(ctx context.Context, juradoID uint) ([]models.DetalleEvaluacion, error) {
	var detalles []models.DetalleEvaluacion
	if err := r.baseDetalles(ctx).
		Where("evaluacions.jurado_id = ?", juradoID).
		Order("detalle_evaluacions.id").
		Find(&detalles).Error; err != nil {
		return nil, err
	}

	return detalles, nil
}

func (r *evaluacionRepository) ListDetallesByJuradoAndVideojuego(ctx context.Context, juradoID, videojuegoID uint) ([]models.DetalleEvaluacion, error) {
	var detalles []models.DetalleEvaluacion
	if err := r.baseDetalles(ctx).
		Where("evaluacions.jurado_id = ?", juradoID).
		Where("evaluacions.videojuego_id = ?", videojuegoID).
		Order("detalle_evaluacions.criterio_id").
		Find(&detalles).Error; err != nil {
		return nil, err
	}

	return detalles, nil
}

func (r *evaluacionRepository) CreateEvaluacion(ctx context.Context, evaluacion *models.Evaluacion) error {
	return r.db.WithContext(ctx).Create(evaluacion).Error
}

func (r *evaluacionRepository) ListCriterios(ctx context.Context) ([]models.Criterio, error) {
	var criterios []models.Criterio
	if err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Order("id").
		Find(&criterios).Error; err != nil {
		return nil, err
	}

	return criterios, nil
}

func (r *evaluacionRepository) ResumenPorVideojuego(ctx context.Context) ([]ResultadoVideojuego, error) {
	var resultados []ResultadoVideojuego
	err := r.db.WithContext(ctx).Model(&models.Videojuego{}).
		Select("videojuegos.id AS videojuego_id, videojuegos.nombre AS nombre, " +
			"COUNT(DISTINCT evaluacions.id) AS evaluaciones, " +
			"AVG(detalle_evaluacions.valor) AS promedio, " +
			"SUM(detalle_evaluacions.valor * criterios.peso) / SUM(criterios.peso) AS promedio_ponderado").
		Joins("JOIN evaluacions ON evaluacions.videojuego_id = videojuegos.id AND evaluacions.deleted = ?", false).
		Joins("JOIN detalle_evaluacions ON detalle_evaluacions.evaluacion_id = evaluacions.id AND detalle_evaluacions.deleted = ?", false).
		Joins("JOIN criterios ON criterios.id = detalle_evaluacions.criterio_id").
		Where("videojuegos.deleted = ?", false).
		Group("videojuegos.id, videojuegos.nombre").
		Order("promedio_ponderado DESC").
		Scan(&resultados).Error
	if err != nil {
		return nil, err
	}

	return resultados, nil
}

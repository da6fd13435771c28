package models

import "time"

// Criterio is one rubric dimension jurors score against.
type Criterio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"size:255;not null" json:"nombre"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Peso        float64   `gorm:"not null;default:1" json:"peso"`
	Deleted     bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Evaluacion is one scoring event of a videogame by a juror. The individual
// criterion values live in Detalles.
type Evaluacion struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	JuradoID     uint                `gorm:"not null;index" json:"jurado_id"`
	VideojuegoID uint                `gorm:"not null;index" json:"videojuego_id"`
	Comentario   string              `gorm:"type:text" json:"comentario"`
	Deleted      bool                `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Jurado       Jurado              `json:"jurado"`
	Videojuego   Videojuego          `json:"videojuego"`
	Detalles     []DetalleEvaluacion `json:"detalles"`
}

// DetalleEvaluacion is the value a juror gave one criterion within an
// evaluation.
type DetalleEvaluacion struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EvaluacionID uint       `gorm:"not null;index" json:"evaluacion_id"`
	CriterioID   uint       `gorm:"not null;index" json:"criterio_id"`
	Valor        float64    `gorm:"not null" json:"valor"`
	Deleted      bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Evaluacion   Evaluacion `json:"-"`
	Criterio     Criterio   `json:"criterio"`
}

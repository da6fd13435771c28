package models

import (
	"time"

	"gorm.io/datatypes"
)

// Videojuego is a team's game submission and the target of juror evaluations.
type Videojuego struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Nombre      string         `gorm:"size:255;not null" json:"nombre"`
	Descripcion string         `gorm:"type:text" json:"descripcion"`
	PortadaURL  string         `gorm:"size:512" json:"portada_url"`
	Tecnologias datatypes.JSON `gorm:"type:json" json:"tecnologias"`
	EquipoID    uint           `gorm:"not null;index" json:"equipo_id"`
	Deleted     bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

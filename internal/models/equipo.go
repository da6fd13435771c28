package models

import "time"

// Equipo represents a competition team. Students and videogame submissions
// hang off the team; the team name is unique among non-deleted rows only so
// a removed team's name can be reused.
type Equipo struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Nombre      string       `gorm:"size:255;not null;index:idx_equipos_nombre_activo,unique,where:deleted = false" json:"nombre"`
	Descripcion string       `gorm:"type:text" json:"descripcion"`
	Deleted     bool         `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Estudiantes []Estudiante `json:"estudiantes"`
	Videojuegos []Videojuego `json:"videojuegos"`
}

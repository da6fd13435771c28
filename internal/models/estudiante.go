package models

import "time"

// Usuario holds the account data backing a student.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:255;not null" json:"nombre"`
	Apellido  string    `gorm:"size:255" json:"apellido"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Deleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Estudiante is a competitor. EquipoID is nil until the student joins a team.
type Estudiante struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UsuarioID      uint            `gorm:"not null" json:"usuario_id"`
	EquipoID       *uint           `gorm:"index" json:"equipo_id"`
	Carrera        string          `gorm:"size:255" json:"carrera"`
	Deleted        bool            `gorm:"not null;default:false" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Usuario        Usuario         `json:"usuario"`
	EstudianteNrcs []EstudianteNrc `json:"estudiante_nrcs"`
}

// EstudianteNrc links a student to a course section. The flag is independent
// of both endpoints: dropping an enrollment does not touch the student or
// the section.
type EstudianteNrc struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EstudianteID uint      `gorm:"not null;index" json:"estudiante_id"`
	NrcID        uint      `gorm:"not null;index" json:"nrc_id"`
	Deleted      bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Nrc          Nrc       `json:"nrc"`
}

package models

import "time"

// Materia is a course offered during the jam semester.
type Materia struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:255;not null" json:"nombre"`
	Codigo    string    `gorm:"size:32" json:"codigo"`
	Deleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Nrc is a course section students enroll in.
type Nrc struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Codigo    string    `gorm:"size:32;not null" json:"codigo"`
	Periodo   string    `gorm:"size:32" json:"periodo"`
	MateriaID uint      `gorm:"not null;index" json:"materia_id"`
	Deleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Materia   Materia   `json:"materia"`
}

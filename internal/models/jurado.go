package models

import "time"

// Jurado scores videogame submissions. A juror is created in the pending
// state and only becomes confirmed after accepting the invitation and
// setting a password.
type Jurado struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nombre       string    `gorm:"size:255;not null" json:"nombre"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Especialidad string    `gorm:"size:255" json:"especialidad"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Estado       string    `gorm:"size:32;not null" json:"estado"`
	Deleted      bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	// JuradoEstadoPendiente indicates the invitation has not been accepted yet.
	JuradoEstadoPendiente = "pendiente"
	// JuradoEstadoConfirmado indicates the juror accepted and set a password.
	JuradoEstadoConfirmado = "confirmado"
)

// IsConfirmado reports whether the juror already accepted the invitation.
func (j Jurado) IsConfirmado() bool {
	return j.Estado == JuradoEstadoConfirmado
}

package dto

import (
	"time"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// JuradoCreateRequest describes the payload for inviting a juror.
type JuradoCreateRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=2,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Especialidad string `json:"especialidad" validate:"omitempty,max=255"`
}

// JuradoUpdateRequest patches a juror.
type JuradoUpdateRequest struct {
	Nombre       *string `json:"nombre" validate:"omitempty,min=2,max=255"`
	Especialidad *string `json:"especialidad" validate:"omitempty,max=255"`
}

// ConfirmarInvitacionRequest activates a pending juror account.
type ConfirmarInvitacionRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// JuradoResponse is returned to API clients when viewing jurors.
type JuradoResponse struct {
	ID           uint      `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	Especialidad string    `json:"especialidad"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewJuradoResponse converts a Jurado model into a DTO.
func NewJuradoResponse(model models.Jurado) JuradoResponse {
	return JuradoResponse{
		ID:           model.ID,
		Nombre:       model.Nombre,
		Email:        model.Email,
		Especialidad: model.Especialidad,
		Estado:       model.Estado,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewJuradoResponseSlice converts juror models into DTOs.
func NewJuradoResponseSlice(jurados []models.Jurado) []JuradoResponse {
	responses := make([]JuradoResponse, 0, len(jurados))
	for _, jurado := range jurados {
		responses = append(responses, NewJuradoResponse(jurado))
	}

	return responses
}

package dto

import (
	"time"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// EquipoCreateRequest describes the payload for registering a team.
type EquipoCreateRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=255"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=2000"`
}

// EquipoUpdateRequest patches a team.
type EquipoUpdateRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=255"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=2000"`
}

// EquipoListFilter describes query string filters for listing teams. Limit
// is applied after retrieval; zero means an empty page while absent means no
// truncation.
type EquipoListFilter struct {
	Limit     *int  `query:"limit" validate:"omitempty,gte=0"`
	MateriaID *uint `query:"materiaId"`
	NrcID     *uint `query:"nrc"`
}

// EquipoResponse is returned to API clients when viewing teams.
type EquipoResponse struct {
	ID          uint                 `json:"id"`
	Nombre      string               `json:"nombre"`
	Descripcion string               `json:"descripcion"`
	Estudiantes []EstudianteResponse `json:"estudiantes,omitempty"`
	Videojuegos []VideojuegoResponse `json:"videojuegos,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewEquipoResponse converts an Equipo model into a DTO, carrying whatever
// associations the query loaded.
func NewEquipoResponse(model models.Equipo) EquipoResponse {
	response := EquipoResponse{
		ID:          model.ID,
		Nombre:      model.Nombre,
		Descripcion: model.Descripcion,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if len(model.Estudiantes) > 0 {
		response.Estudiantes = NewEstudianteResponseSlice(model.Estudiantes)
	}

	if len(model.Videojuegos) > 0 {
		response.Videojuegos = NewVideojuegoResponseSlice(model.Videojuegos)
	}

	return response
}

// NewEquipoResponseSlice converts team models into DTOs.
func NewEquipoResponseSlice(equipos []models.Equipo) []EquipoResponse {
	responses := make([]EquipoResponse, 0, len(equipos))
	for _, equipo := range equipos {
		responses = append(responses, NewEquipoResponse(equipo))
	}

	return responses
}

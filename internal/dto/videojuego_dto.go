package dto

import (
	"encoding/json"
	"time"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// VideojuegoCreateRequest describes the payload for registering a game
// submission.
type VideojuegoCreateRequest struct {
	Nombre      string   `json:"nombre" validate:"required,min=2,max=255"`
	Descripcion string   `json:"descripcion" validate:"omitempty,max=2000"`
	Tecnologias []string `json:"tecnologias" validate:"omitempty,dive,min=1,max=64"`
	EquipoID    uint     `json:"equipo_id" validate:"required,gt=0"`
}

// VideojuegoUpdateRequest patches a game submission.
type VideojuegoUpdateRequest struct {
	Nombre      *string  `json:"nombre" validate:"omitempty,min=2,max=255"`
	Descripcion *string  `json:"descripcion" validate:"omitempty,max=2000"`
	Tecnologias []string `json:"tecnologias" validate:"omitempty,dive,min=1,max=64"`
}

// VideojuegoResponse is returned to API clients when viewing submissions.
type VideojuegoResponse struct {
	ID          uint      `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	PortadaURL  string    `json:"portada_url"`
	Tecnologias []string  `json:"tecnologias"`
	EquipoID    uint      `json:"equipo_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewVideojuegoResponse converts a Videojuego model into a DTO.
func NewVideojuegoResponse(model models.Videojuego) VideojuegoResponse {
	response := VideojuegoResponse{
		ID:          model.ID,
		Nombre:      model.Nombre,
		Descripcion: model.Descripcion,
		PortadaURL:  model.PortadaURL,
		EquipoID:    model.EquipoID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if len(model.Tecnologias) > 0 {
		var tecnologias []string
		if err := json.Unmarshal(model.Tecnologias, &tecnologias); err == nil {
			response.Tecnologias = tecnologias
		}
	}

	return response
}

// NewVideojuegoResponseSlice converts submission models into DTOs.
func NewVideojuegoResponseSlice(videojuegos []models.Videojuego) []VideojuegoResponse {
	responses := make([]VideojuegoResponse, 0, len(videojuegos))
	for _, videojuego := range videojuegos {
		responses = append(responses, NewVideojuegoResponse(videojuego))
	}

	return responses
}

package dto

import "github.com/noah-isme/gamejam-api/internal/repository"

// DetalleCreateRequest is one (criterion, value) pair inside an evaluation.
type DetalleCreateRequest struct {
	CriterioID uint    `json:"criterio_id" validate:"required,gt=0"`
	Valor      float64 `json:"valor" validate:"gte=0,lte=100"`
}

// EvaluacionCreateRequest registers one juror's scoring of a videogame.
type EvaluacionCreateRequest struct {
	JuradoID   uint                   `json:"jurado_id" validate:"required,gt=0"`
	Comentario string                 `json:"comentario" validate:"omitempty,max=2000"`
	Detalles   []DetalleCreateRequest `json:"detalles" validate:"required,min=1,dive"`
}

// EvaluacionRealizadaResponse is one aggregate entry per videogame a juror
// has scored.
type EvaluacionRealizadaResponse struct {
	VideojuegoID       uint    `json:"videojuego_id"`
	VideojuegoNombre   string  `json:"videojuego_nombre"`
	CriteriosEvaluados int     `json:"criterios_evaluados"`
	Promedio           float64 `json:"promedio"`
	Completada         bool    `json:"completada"`
}

// DetalleCriterioResponse is one scored criterion in the per-videogame
// breakdown.
type DetalleCriterioResponse struct {
	CriterioID uint    `json:"criterio_id"`
	Criterio   string  `json:"criterio"`
	Valor      float64 `json:"valor"`
}

// ResultadoVideojuegoResponse is one scoreboard row.
type ResultadoVideojuegoResponse struct {
	VideojuegoID      uint    `json:"videojuego_id"`
	Nombre            string  `json:"nombre"`
	Evaluaciones      int64   `json:"evaluaciones"`
	Promedio          float64 `json:"promedio"`
	PromedioPonderado float64 `json:"promedio_ponderado"`
}

// NewResultadoResponseSlice converts aggregated scoreboard rows into DTOs.
func NewResultadoResponseSlice(resultados []repository.ResultadoVideojuego) []ResultadoVideojuegoResponse {
	responses := make([]ResultadoVideojuegoResponse, 0, len(resultados))
	for _, resultado := range resultados {
		responses = append(responses, ResultadoVideojuegoResponse{
			VideojuegoID:      resultado.VideojuegoID,
			Nombre:            resultado.Nombre,
			Evaluaciones:      resultado.Evaluaciones,
			Promedio:          resultado.Promedio,
			PromedioPonderado: resultado.PromedioPonderado,
		})
	}

	return responses
}

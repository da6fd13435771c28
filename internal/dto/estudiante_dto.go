package dto

import (
	"time"

	"github.com/noah-isme/gamejam-api/internal/models"
)

// EstudianteCreateRequest registers a student together with their account
// and optional section enrollments.
type EstudianteCreateRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=255"`
	Apellido string `json:"apellido" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Carrera  string `json:"carrera" validate:"omitempty,max=255"`
	EquipoID *uint  `json:"equipo_id" validate:"omitempty,gt=0"`
	NrcIDs   []uint `json:"nrc_ids" validate:"omitempty,dive,gt=0"`
}

// EstudianteUpdateRequest patches a student.
type EstudianteUpdateRequest struct {
	Carrera  *string `json:"carrera" validate:"omitempty,max=255"`
	EquipoID *uint   `json:"equipo_id" validate:"omitempty,gt=0"`
}

// UsuarioResponse serializes the account behind a student.
type UsuarioResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
}

// MateriaLite summarizes a course inside enrollment detail.
type MateriaLite struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}

// EnrollmentResponse serializes one section enrollment with its course.
type EnrollmentResponse struct {
	ID      uint        `json:"id"`
	NrcID   uint        `json:"nrc_id"`
	Codigo  string      `json:"codigo"`
	Periodo string      `json:"periodo"`
	Materia MateriaLite `json:"materia"`
}

// EstudianteResponse is returned to API clients when viewing students.
type EstudianteResponse struct {
	ID          uint                 `json:"id"`
	Carrera     string               `json:"carrera"`
	EquipoID    *uint                `json:"equipo_id"`
	Usuario     UsuarioResponse      `json:"usuario"`
	Enrollments []EnrollmentResponse `json:"estudiante_nrcs"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewEstudianteResponse converts an Estudiante model into a DTO.
func NewEstudianteResponse(model models.Estudiante) EstudianteResponse {
	response := EstudianteResponse{
		ID:        model.ID,
		Carrera:   model.Carrera,
		EquipoID:  model.EquipoID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.Usuario.ID != 0 {
		response.Usuario = UsuarioResponse{
			ID:       model.Usuario.ID,
			Nombre:   model.Usuario.Nombre,
			Apellido: model.Usuario.Apellido,
			Email:    model.Usuario.Email,
		}
	}

	if len(model.EstudianteNrcs) > 0 {
		enrollments := make([]EnrollmentResponse, 0, len(model.EstudianteNrcs))
		for _, enrollment := range model.EstudianteNrcs {
			entry := EnrollmentResponse{
				ID:      enrollment.ID,
				NrcID:   enrollment.NrcID,
				Codigo:  enrollment.Nrc.Codigo,
				Periodo: enrollment.Nrc.Periodo,
			}
			if enrollment.Nrc.Materia.ID != 0 {
				entry.Materia = MateriaLite{
					ID:     enrollment.Nrc.Materia.ID,
					Nombre: enrollment.Nrc.Materia.Nombre,
					Codigo: enrollment.Nrc.Materia.Codigo,
				}
			}
			enrollments = append(enrollments, entry)
		}
		response.Enrollments = enrollments
	}

	return response
}

// NewEstudianteResponseSlice converts student models into DTOs.
func NewEstudianteResponseSlice(estudiantes []models.Estudiante) []EstudianteResponse {
	responses := make([]EstudianteResponse, 0, len(estudiantes))
	for _, estudiante := range estudiantes {
		responses = append(responses, NewEstudianteResponse(estudiante))
	}

	return responses
}

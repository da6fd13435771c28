package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

// EstudianteService orchestrates student workflows.
type EstudianteService interface {
	Create(ctx context.Context, payload dto.EstudianteCreateRequest) (dto.EstudianteResponse, error)
	List(ctx context.Context) ([]dto.EstudianteResponse, error)
	Get(ctx context.Context, id uint) (dto.EstudianteResponse, error)
	Update(ctx context.Context, id uint, payload dto.EstudianteUpdateRequest) (dto.EstudianteResponse, error)
	Remove(ctx context.Context, id uint) error
}

type estudianteService struct {
	estudiantes repository.EstudianteRepository
	equipos     repository.EquipoRepository
	nrcs        repository.NrcRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewEstudianteService constructs an EstudianteService instance.
func NewEstudianteService(estudianteRepo repository.EstudianteRepository, equipoRepo repository.EquipoRepository, nrcRepo repository.NrcRepository, validate *validator.Validate, logger zerolog.Logger) EstudianteService {
	return &estudianteService{
		estudiantes: estudianteRepo,
		equipos:     equipoRepo,
		nrcs:        nrcRepo,
		validator:   validate,
		logger:      logger.With().Str("component", "estudiante_service").Logger(),
	}
}

func (s *estudianteService) Create(ctx context.Context, payload dto.EstudianteCreateRequest) (dto.EstudianteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EstudianteResponse{}, err
	}

	if payload.EquipoID != nil {
		if _, err := s.equipos.GetByID(ctx, *payload.EquipoID); err != nil {
			return dto.EstudianteResponse{}, validateExists(err, "equipo", *payload.EquipoID)
		}
	}

	enrollments := make([]models.EstudianteNrc, 0, len(payload.NrcIDs))
	for _, nrcID := range payload.NrcIDs {
		if _, err := s.nrcs.GetByID(ctx, nrcID); err != nil {
			return dto.EstudianteResponse{}, validateExists(err, "nrc", nrcID)
		}
		enrollments = append(enrollments, models.EstudianteNrc{NrcID: nrcID})
	}

	estudiante := models.Estudiante{
		EquipoID: payload.EquipoID,
		Carrera:  payload.Carrera,
		Usuario: models.Usuario{
			Nombre:   payload.Nombre,
			Apellido: payload.Apellido,
			Email:    payload.Email,
		},
		EstudianteNrcs: enrollments,
	}

	if err := s.estudiantes.Create(ctx, &estudiante); err != nil {
		if isDuplicateKey(err) {
			return dto.EstudianteResponse{}, &ConflictError{Entity: "usuario", Field: "email", Value: payload.Email}
		}
		return dto.EstudianteResponse{}, err
	}

	// Reload with associations
	created, err := s.estudiantes.GetByID(ctx, estudiante.ID)
	if err != nil {
		return dto.EstudianteResponse{}, err
	}

	s.logger.Info().Uint("estudiante_id", created.ID).Msg("estudiante created")

	return dto.NewEstudianteResponse(created), nil
}

func (s *estudianteService) List(ctx context.Context) ([]dto.EstudianteResponse, error) {
	estudiantes, err := s.estudiantes.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewEstudianteResponseSlice(estudiantes), nil
}

func (s *estudianteService) Get(ctx context.Context, id uint) (dto.EstudianteResponse, error) {
	estudiante, err := s.estudiantes.GetByID(ctx, id)
	if err != nil {
		return dto.EstudianteResponse{}, validateExists(err, "estudiante", id)
	}

	return dto.NewEstudianteResponse(estudiante), nil
}

func (s *estudianteService) Update(ctx context.Context, id uint, payload dto.EstudianteUpdateRequest) (dto.EstudianteResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EstudianteResponse{}, err
	}

	estudiante, err := s.estudiantes.GetByID(ctx, id)
	if err != nil {
		return dto.EstudianteResponse{}, validateExists(err, "estudiante", id)
	}

	if payload.EquipoID != nil {
		if _, err := s.equipos.GetByID(ctx, *payload.EquipoID); err != nil {
			return dto.EstudianteResponse{}, validateExists(err, "equipo", *payload.EquipoID)
		}
		estudiante.EquipoID = payload.EquipoID
	}

	if payload.Carrera != nil {
		estudiante.Carrera = *payload.Carrera
	}

	if err := s.estudiantes.Update(ctx, &estudiante); err != nil {
		return dto.EstudianteResponse{}, err
	}

	s.logger.Info().Uint("estudiante_id", estudiante.ID).Msg("estudiante updated")

	return dto.NewEstudianteResponse(estudiante), nil
}

func (s *estudianteService) Remove(ctx context.Context, id uint) error {
	if _, err := s.estudiantes.GetByID(ctx, id); err != nil {
		return validateExists(err, "estudiante", id)
	}

	if err := s.estudiantes.SoftDelete(ctx, id); err != nil {
		return validateExists(err, "estudiante", id)
	}

	s.logger.Info().Uint("estudiante_id", id).Msg("estudiante removed")

	return nil
}

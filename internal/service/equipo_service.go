package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

// EquipoService orchestrates team workflows: creation with name uniqueness,
// multi-hop filtered listing and the cascading soft delete.
type EquipoService interface {
	Create(ctx context.Context, payload dto.EquipoCreateRequest) (dto.EquipoResponse, error)
	List(ctx context.Context, filter dto.EquipoListFilter) ([]dto.EquipoResponse, error)
	Get(ctx context.Context, id uint) (dto.EquipoResponse, error)
	Update(ctx context.Context, id uint, payload dto.EquipoUpdateRequest) (dto.EquipoResponse, error)
	Remove(ctx context.Context, id uint) (dto.EquipoResponse, error)
}

type equipoService struct {
	equipos   repository.EquipoRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	eventos   *Eventos
	logger    zerolog.Logger
}

// NewEquipoService constructs an EquipoService instance.
func NewEquipoService(repo repository.EquipoRepository, validate *validator.Validate, eventos *Eventos, logger zerolog.Logger) EquipoService {
	return &equipoService{
		equipos:   repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		eventos:   eventos,
		logger:    logger.With().Str("component", "equipo_service").Logger(),
	}
}

func (s *equipoService) Create(ctx context.Context, payload dto.EquipoCreateRequest) (dto.EquipoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EquipoResponse{}, err
	}

	// Uniqueness is checked against non-deleted rows only, so a removed
	// team's name can be taken again.
	if _, err := s.equipos.GetByNombre(ctx, payload.Nombre); err == nil {
		return dto.EquipoResponse{}, &ConflictError{Entity: "equipo", Field: "nombre", Value: payload.Nombre}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.EquipoResponse{}, err
	}

	equipo := models.Equipo{
		Nombre:      payload.Nombre,
		Descripcion: s.sanitizer.Sanitize(payload.Descripcion),
	}

	if err := s.equipos.Create(ctx, &equipo); err != nil {
		// Two concurrent creates can both pass the pre-check; the partial
		// unique index is the last line of defense and its violation maps
		// to the same conflict.
		if isDuplicateKey(err) {
			return dto.EquipoResponse{}, &ConflictError{Entity: "equipo", Field: "nombre", Value: payload.Nombre}
		}
		return dto.EquipoResponse{}, err
	}

	s.logger.Info().Uint("equipo_id", equipo.ID).Str("nombre", equipo.Nombre).Msg("equipo created")

	return dto.NewEquipoResponse(equipo), nil
}

func (s *equipoService) List(ctx context.Context, filter dto.EquipoListFilter) ([]dto.EquipoResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	equipos, err := s.equipos.List(ctx, repository.EquipoFilter{
		MateriaID: filter.MateriaID,
		NrcID:     filter.NrcID,
	})
	if err != nil {
		return nil, err
	}

	// The limit truncates the already-fetched set in the store's natural
	// order; zero yields an empty page, absent disables truncation.
	if filter.Limit != nil && *filter.Limit < len(equipos) {
		equipos = equipos[:*filter.Limit]
	}

	return dto.NewEquipoResponseSlice(equipos), nil
}

func (s *equipoService) Get(ctx context.Context, id uint) (dto.EquipoResponse, error) {
	equipo, err := s.equipos.GetByID(ctx, id)
	if err != nil {
		return dto.EquipoResponse{}, validateExists(err, "equipo", id)
	}

	return dto.NewEquipoResponse(equipo), nil
}

func (s *equipoService) Update(ctx context.Context, id uint, payload dto.EquipoUpdateRequest) (dto.EquipoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EquipoResponse{}, err
	}

	equipo, err := s.equipos.GetByID(ctx, id)
	if err != nil {
		return dto.EquipoResponse{}, validateExists(err, "equipo", id)
	}

	if payload.Nombre != nil && *payload.Nombre != equipo.Nombre {
		if _, err := s.equipos.GetByNombre(ctx, *payload.Nombre); err == nil {
			return dto.EquipoResponse{}, &ConflictError{Entity: "equipo", Field: "nombre", Value: *payload.Nombre}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EquipoResponse{}, err
		}
		equipo.Nombre = *payload.Nombre
	}

	if payload.Descripcion != nil {
		equipo.Descripcion = s.sanitizer.Sanitize(*payload.Descripcion)
	}

	if err := s.equipos.Update(ctx, &equipo); err != nil {
		if isDuplicateKey(err) {
			return dto.EquipoResponse{}, &ConflictError{Entity: "equipo", Field: "nombre", Value: equipo.Nombre}
		}
		return dto.EquipoResponse{}, err
	}

	s.logger.Info().Uint("equipo_id", equipo.ID).Msg("equipo updated")

	return dto.NewEquipoResponse(equipo), nil
}

func (s *equipoService) Remove(ctx context.Context, id uint) (dto.EquipoResponse, error) {
	equipo, err := s.equipos.GetByID(ctx, id)
	if err != nil {
		return dto.EquipoResponse{}, validateExists(err, "equipo", id)
	}

	if err := s.equipos.SoftDeleteCascade(ctx, id); err != nil {
		// A concurrent removal may have won between the lookup and the
		// cascade; the loser observes the team as already gone.
		return dto.EquipoResponse{}, validateExists(err, "equipo", id)
	}

	s.eventos.Publish(EventEquipoEliminado, map[string]any{"equipo_id": id, "nombre": equipo.Nombre})
	s.logger.Info().Uint("equipo_id", id).Msg("equipo removed with cascade")

	return dto.NewEquipoResponse(equipo), nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

// VideojuegoService orchestrates game submission workflows, including the
// cover image upload and evaluation registration.
type VideojuegoService interface {
	Create(ctx context.Context, payload dto.VideojuegoCreateRequest) (dto.VideojuegoResponse, error)
	List(ctx context.Context) ([]dto.VideojuegoResponse, error)
	Get(ctx context.Context, id uint) (dto.VideojuegoResponse, error)
	Update(ctx context.Context, id uint, payload dto.VideojuegoUpdateRequest) (dto.VideojuegoResponse, error)
	Remove(ctx context.Context, id uint) error
	SubirPortada(ctx context.Context, id uint, file *multipart.FileHeader) (dto.VideojuegoResponse, error)
	RegistrarEvaluacion(ctx context.Context, videojuegoID uint, payload dto.EvaluacionCreateRequest) error
}

type videojuegoService struct {
	videojuegos  repository.VideojuegoRepository
	equipos      repository.EquipoRepository
	jurados      repository.JuradoRepository
	evaluaciones repository.EvaluacionRepository
	validator    *validator.Validate
	uploader     FileUploader
	sanitizer    *bluemonday.Policy
	eventos      *Eventos
	logger       zerolog.Logger
}

// NewVideojuegoService constructs a VideojuegoService instance.
func NewVideojuegoService(videojuegoRepo repository.VideojuegoRepository, equipoRepo repository.EquipoRepository, juradoRepo repository.JuradoRepository, evaluacionRepo repository.EvaluacionRepository, validate *validator.Validate, uploader FileUploader, eventos *Eventos, logger zerolog.Logger) VideojuegoService {
	return &videojuegoService{
		videojuegos:  videojuegoRepo,
		equipos:      equipoRepo,
		jurados:      juradoRepo,
		evaluaciones: evaluacionRepo,
		validator:    validate,
		uploader:     uploader,
		sanitizer:    bluemonday.StrictPolicy(),
		eventos:      eventos,
		logger:       logger.With().Str("component", "videojuego_service").Logger(),
	}
}

func (s *videojuegoService) Create(ctx context.Context, payload dto.VideojuegoCreateRequest) (dto.VideojuegoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	if _, err := s.equipos.GetByID(ctx, payload.EquipoID); err != nil {
		return dto.VideojuegoResponse{}, validateExists(err, "equipo", payload.EquipoID)
	}

	videojuego := models.Videojuego{
		Nombre:      payload.Nombre,
		Descripcion: s.sanitizer.Sanitize(payload.Descripcion),
		EquipoID:    payload.EquipoID,
	}

	if len(payload.Tecnologias) > 0 {
		encoded, err := json.Marshal(payload.Tecnologias)
		if err != nil {
			return dto.VideojuegoResponse{}, fmt.Errorf("failed to encode tecnologias: %w", err)
		}
		videojuego.Tecnologias = datatypes.JSON(encoded)
	}

	if err := s.videojuegos.Create(ctx, &videojuego); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	s.logger.Info().Uint("videojuego_id", videojuego.ID).Uint("equipo_id", videojuego.EquipoID).Msg("videojuego created")

	return dto.NewVideojuegoResponse(videojuego), nil
}

func (s *videojuegoService) List(ctx context.Context) ([]dto.VideojuegoResponse, error) {
	videojuegos, err := s.videojuegos.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewVideojuegoResponseSlice(videojuegos), nil
}

func (s *videojuegoService) Get(ctx context.Context, id uint) (dto.VideojuegoResponse, error) {
	videojuego, err := s.videojuegos.GetByID(ctx, id)
	if err != nil {
		return dto.VideojuegoResponse{}, validateExists(err, "videojuego", id)
	}

	return dto.NewVideojuegoResponse(videojuego), nil
}

func (s *videojuegoService) Update(ctx context.Context, id uint, payload dto.VideojuegoUpdateRequest) (dto.VideojuegoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	videojuego, err := s.videojuegos.GetByID(ctx, id)
	if err != nil {
		return dto.VideojuegoResponse{}, validateExists(err, "videojuego", id)
	}

	if payload.Nombre != nil {
		videojuego.Nombre = *payload.Nombre
	}
	if payload.Descripcion != nil {
		videojuego.Descripcion = s.sanitizer.Sanitize(*payload.Descripcion)
	}
	if payload.Tecnologias != nil {
		encoded, err := json.Marshal(payload.Tecnologias)
		if err != nil {
			return dto.VideojuegoResponse{}, fmt.Errorf("failed to encode tecnologias: %w", err)
		}
		videojuego.Tecnologias = datatypes.JSON(encoded)
	}

	if err := s.videojuegos.Update(ctx, &videojuego); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	s.logger.Info().Uint("videojuego_id", videojuego.ID).Msg("videojuego updated")

	return dto.NewVideojuegoResponse(videojuego), nil
}

func (s *videojuegoService) Remove(ctx context.Context, id uint) error {
	if _, err := s.videojuegos.GetByID(ctx, id); err != nil {
		return validateExists(err, "videojuego", id)
	}

	if err := s.videojuegos.SoftDelete(ctx, id); err != nil {
		return validateExists(err, "videojuego", id)
	}

	s.logger.Info().Uint("videojuego_id", id).Msg("videojuego removed")

	return nil
}

func (s *videojuegoService) SubirPortada(ctx context.Context, id uint, file *multipart.FileHeader) (dto.VideojuegoResponse, error) {
	if file == nil {
		return dto.VideojuegoResponse{}, &InvalidInputError{Field: "portada", Value: "", Reason: "file is required"}
	}
	if s.uploader == nil {
		return dto.VideojuegoResponse{}, fmt.Errorf("portada uploads are not configured")
	}

	videojuego, err := s.videojuegos.GetByID(ctx, id)
	if err != nil {
		return dto.VideojuegoResponse{}, validateExists(err, "videojuego", id)
	}

	if err := validateImageType(file); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	reader, err := file.Open()
	if err != nil {
		return dto.VideojuegoResponse{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	uploadURL, err := s.uploader.Upload(ctx, file.Filename, reader)
	if err != nil {
		return dto.VideojuegoResponse{}, fmt.Errorf("failed to upload portada: %w", err)
	}

	videojuego.PortadaURL = uploadURL

	if err := s.videojuegos.Update(ctx, &videojuego); err != nil {
		return dto.VideojuegoResponse{}, err
	}

	s.logger.Info().Uint("videojuego_id", videojuego.ID).Msg("portada uploaded")

	return dto.NewVideojuegoResponse(videojuego), nil
}

// RegistrarEvaluacion records one juror's scoring of the videogame as an
// evaluation with one detail row per criterion.
func (s *videojuegoService) RegistrarEvaluacion(ctx context.Context, videojuegoID uint, payload dto.EvaluacionCreateRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	if _, err := s.videojuegos.GetByID(ctx, videojuegoID); err != nil {
		return validateExists(err, "videojuego", videojuegoID)
	}

	jurado, err := s.jurados.GetByID(ctx, payload.JuradoID)
	if err != nil {
		return validateExists(err, "jurado", payload.JuradoID)
	}
	if !jurado.IsConfirmado() {
		return &InvalidInputError{Field: "jurado_id", Value: fmt.Sprint(payload.JuradoID), Reason: "jurado has not confirmed the invitation"}
	}

	criterios, err := s.evaluaciones.ListCriterios(ctx)
	if err != nil {
		return err
	}
	valid := make(map[uint]struct{}, len(criterios))
	for _, criterio := range criterios {
		valid[criterio.ID] = struct{}{}
	}

	detalles := make([]models.DetalleEvaluacion, 0, len(payload.Detalles))
	for _, detalle := range payload.Detalles {
		if _, ok := valid[detalle.CriterioID]; !ok {
			return &NotFoundError{Entity: "criterio", ID: fmt.Sprint(detalle.CriterioID)}
		}
		detalles = append(detalles, models.DetalleEvaluacion{
			CriterioID: detalle.CriterioID,
			Valor:      detalle.Valor,
		})
	}

	evaluacion := models.Evaluacion{
		JuradoID:     payload.JuradoID,
		VideojuegoID: videojuegoID,
		Comentario:   s.sanitizer.Sanitize(payload.Comentario),
		Detalles:     detalles,
	}

	if err := s.evaluaciones.CreateEvaluacion(ctx, &evaluacion); err != nil {
		return err
	}

	s.eventos.Publish(EventEvaluacionRegistrada, map[string]any{
		"evaluacion_id": evaluacion.ID,
		"jurado_id":     payload.JuradoID,
		"videojuego_id": videojuegoID,
	})
	s.logger.Info().Uint("evaluacion_id", evaluacion.ID).Uint("jurado_id", payload.JuradoID).Uint("videojuego_id", videojuegoID).Msg("evaluacion registered")

	return nil
}

func validateImageType(file *multipart.FileHeader) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	mime, err := mimetype.DetectReader(reader)
	if err != nil {
		return fmt.Errorf("failed to detect file type: %w", err)
	}

	allowed := []string{"image/png", "image/jpeg", "image/webp", "image/gif"}
	for _, a := range allowed {
		if mime.Is(a) {
			return nil
		}
	}

	return &InvalidInputError{Field: "portada", Value: file.Filename, Reason: fmt.Sprintf("unsupported file type %s", mime.String())}
}

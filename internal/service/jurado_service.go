package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/models"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

const inviteTokenScope = "jurado_invitacion"

// JuradoService orchestrates juror workflows: invitation lifecycle and the
// evaluation aggregation read paths.
type JuradoService interface {
	Create(ctx context.Context, payload dto.JuradoCreateRequest) (dto.JuradoResponse, error)
	List(ctx context.Context) ([]dto.JuradoResponse, error)
	Get(ctx context.Context, id uint) (dto.JuradoResponse, error)
	Update(ctx context.Context, id uint, payload dto.JuradoUpdateRequest) (dto.JuradoResponse, error)
	Remove(ctx context.Context, id uint) error
	ConfirmarInvitacion(ctx context.Context, payload dto.ConfirmarInvitacionRequest) (dto.JuradoResponse, error)
	EvaluacionesRealizadas(ctx context.Context, juradoID string) ([]dto.EvaluacionRealizadaResponse, error)
	DetalleEvaluacion(ctx context.Context, juradoID, videojuegoID string) ([]dto.DetalleCriterioResponse, error)
}

type juradoService struct {
	jurados      repository.JuradoRepository
	evaluaciones repository.EvaluacionRepository
	videojuegos  repository.VideojuegoRepository
	validator    *validator.Validate
	mailer       Mailer
	eventos      *Eventos
	inviteSecret string
	inviteTTL    time.Duration
	logger       zerolog.Logger
	now          func() time.Time
}

// NewJuradoService constructs a JuradoService instance.
func NewJuradoService(juradoRepo repository.JuradoRepository, evaluacionRepo repository.EvaluacionRepository, videojuegoRepo repository.VideojuegoRepository, validate *validator.Validate, mailer Mailer, eventos *Eventos, inviteSecret string, inviteTTL time.Duration, logger zerolog.Logger) JuradoService {
	return &juradoService{
		jurados:      juradoRepo,
		evaluaciones: evaluacionRepo,
		videojuegos:  videojuegoRepo,
		validator:    validate,
		mailer:       mailer,
		eventos:      eventos,
		inviteSecret: inviteSecret,
		inviteTTL:    inviteTTL,
		logger:       logger.With().Str("component", "jurado_service").Logger(),
		now:          time.Now,
	}
}

func (s *juradoService) Create(ctx context.Context, payload dto.JuradoCreateRequest) (dto.JuradoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JuradoResponse{}, err
	}

	if _, err := s.jurados.GetByEmail(ctx, payload.Email); err == nil {
		return dto.JuradoResponse{}, &ConflictError{Entity: "jurado", Field: "email", Value: payload.Email}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.JuradoResponse{}, err
	}

	jurado := models.Jurado{
		Nombre:       payload.Nombre,
		Email:        payload.Email,
		Especialidad: payload.Especialidad,
		Estado:       models.JuradoEstadoPendiente,
	}

	if err := s.jurados.Create(ctx, &jurado); err != nil {
		if isDuplicateKey(err) {
			return dto.JuradoResponse{}, &ConflictError{Entity: "jurado", Field: "email", Value: payload.Email}
		}
		return dto.JuradoResponse{}, err
	}

	token, err := s.issueInviteToken(jurado.ID)
	if err != nil {
		return dto.JuradoResponse{}, fmt.Errorf("failed to issue invite token: %w", err)
	}

	// Mail delivery is best-effort; the invitation token can be re-issued.
	if s.mailer != nil {
		if err := s.mailer.SendInvitacion(ctx, jurado.Email, jurado.Nombre, token); err != nil {
			s.logger.Warn().Err(err).Uint("jurado_id", jurado.ID).Msg("failed to send invitation mail")
		}
	}

	s.logger.Info().Uint("jurado_id", jurado.ID).Str("email", jurado.Email).Msg("jurado invited")

	return dto.NewJuradoResponse(jurado), nil
}

func (s *juradoService) List(ctx context.Context) ([]dto.JuradoResponse, error) {
	jurados, err := s.jurados.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewJuradoResponseSlice(jurados), nil
}

func (s *juradoService) Get(ctx context.Context, id uint) (dto.JuradoResponse, error) {
	jurado, err := s.jurados.GetByID(ctx, id)
	if err != nil {
		return dto.JuradoResponse{}, validateExists(err, "jurado", id)
	}

	return dto.NewJuradoResponse(jurado), nil
}

func (s *juradoService) Update(ctx context.Context, id uint, payload dto.JuradoUpdateRequest) (dto.JuradoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JuradoResponse{}, err
	}

	jurado, err := s.jurados.GetByID(ctx, id)
	if err != nil {
		return dto.JuradoResponse{}, validateExists(err, "jurado", id)
	}

	if payload.Nombre != nil {
		jurado.Nombre = *payload.Nombre
	}
	if payload.Especialidad != nil {
		jurado.Especialidad = *payload.Especialidad
	}

	if err := s.jurados.Update(ctx, &jurado); err != nil {
		return dto.JuradoResponse{}, err
	}

	s.logger.Info().Uint("jurado_id", jurado.ID).Msg("jurado updated")

	return dto.NewJuradoResponse(jurado), nil
}

func (s *juradoService) Remove(ctx context.Context, id uint) error {
	if _, err := s.jurados.GetByID(ctx, id); err != nil {
		return validateExists(err, "jurado", id)
	}

	if err := s.jurados.SoftDelete(ctx, id); err != nil {
		return validateExists(err, "jurado", id)
	}

	s.logger.Info().Uint("jurado_id", id).Msg("jurado removed")

	return nil
}

// ConfirmarInvitacion transitions a pending juror to confirmed and stores
// the bcrypt hash of the chosen password. A token that does not resolve to a
// pending, non-deleted juror fails as not found.
func (s *juradoService) ConfirmarInvitacion(ctx context.Context, payload dto.ConfirmarInvitacionRequest) (dto.JuradoResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.JuradoResponse{}, err
	}

	juradoID, err := s.parseInviteToken(payload.Token)
	if err != nil {
		return dto.JuradoResponse{}, &NotFoundError{Entity: "invitación de jurado"}
	}

	jurado, err := s.jurados.GetByID(ctx, juradoID)
	if err != nil {
		return dto.JuradoResponse{}, validateExists(err, "jurado", juradoID)
	}

	if jurado.IsConfirmado() {
		return dto.JuradoResponse{}, &NotFoundError{Entity: "invitación de jurado"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.JuradoResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	jurado.PasswordHash = string(hash)
	jurado.Estado = models.JuradoEstadoConfirmado

	if err := s.jurados.Update(ctx, &jurado); err != nil {
		return dto.JuradoResponse{}, err
	}

	s.eventos.Publish(EventJuradoConfirmado, map[string]any{"jurado_id": jurado.ID})
	s.logger.Info().Uint("jurado_id", jurado.ID).Msg("jurado confirmed invitation")

	return dto.NewJuradoResponse(jurado), nil
}

// EvaluacionesRealizadas returns one aggregate entry per videogame the juror
// has produced at least one detail row for. A juror with no evaluations gets
// an empty sequence, not an error.
func (s *juradoService) EvaluacionesRealizadas(ctx context.Context, juradoID string) ([]dto.EvaluacionRealizadaResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/gamejam-api/internal/service/jurado")
	ctx, span := tracer.Start(ctx, "jurado.evaluaciones_realizadas")
	defer span.End()

	id, err := parseID("jurado id", juradoID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("jurado.id", int64(id)))

	if _, err := s.jurados.GetByID(ctx, id); err != nil {
		return nil, validateExists(err, "jurado", id)
	}

	detalles, err := s.evaluaciones.ListDetallesByJurado(ctx, id)
	if err != nil {
		return nil, err
	}

	order := make([]uint, 0)
	groups := make(map[uint]*dto.EvaluacionRealizadaResponse)
	totals := make(map[uint]float64)

	for _, detalle := range detalles {
		videojuegoID := detalle.Evaluacion.VideojuegoID
		entry, ok := groups[videojuegoID]
		if !ok {
			entry = &dto.EvaluacionRealizadaResponse{
				VideojuegoID:     videojuegoID,
				VideojuegoNombre: detalle.Evaluacion.Videojuego.Nombre,
				Completada:       true,
			}
			groups[videojuegoID] = entry
			order = append(order, videojuegoID)
		}
		entry.CriteriosEvaluados++
		totals[videojuegoID] += detalle.Valor
	}

	realizadas := make([]dto.EvaluacionRealizadaResponse, 0, len(order))
	for _, videojuegoID := range order {
		entry := groups[videojuegoID]
		if entry.CriteriosEvaluados > 0 {
			entry.Promedio = totals[videojuegoID] / float64(entry.CriteriosEvaluados)
		}
		realizadas = append(realizadas, *entry)
	}

	span.SetAttributes(attribute.Int("evaluaciones.videojuegos", len(realizadas)))

	return realizadas, nil
}

// DetalleEvaluacion returns the ordered (criterion, value) pairs for one
// (juror, videogame) pair. A missing juror, a missing videogame and an
// absent evaluation are distinguished by message but all surface as not
// found.
func (s *juradoService) DetalleEvaluacion(ctx context.Context, juradoID, videojuegoID string) ([]dto.DetalleCriterioResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/gamejam-api/internal/service/jurado")
	ctx, span := tracer.Start(ctx, "jurado.detalle_evaluacion")
	defer span.End()

	jid, err := parseID("jurado id", juradoID)
	if err != nil {
		return nil, err
	}
	vid, err := parseID("videojuego id", videojuegoID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("jurado.id", int64(jid)), attribute.Int64("videojuego.id", int64(vid)))

	if _, err := s.jurados.GetByID(ctx, jid); err != nil {
		return nil, validateExists(err, "jurado", jid)
	}
	if _, err := s.videojuegos.GetByID(ctx, vid); err != nil {
		return nil, validateExists(err, "videojuego", vid)
	}

	detalles, err := s.evaluaciones.ListDetallesByJuradoAndVideojuego(ctx, jid, vid)
	if err != nil {
		return nil, err
	}

	if len(detalles) == 0 {
		return nil, &NotFoundError{
			Entity: "evaluación",
			ID:     fmt.Sprintf("jurado %d / videojuego %d", jid, vid),
		}
	}

	breakdown := make([]dto.DetalleCriterioResponse, 0, len(detalles))
	for _, detalle := range detalles {
		breakdown = append(breakdown, dto.DetalleCriterioResponse{
			CriterioID: detalle.CriterioID,
			Criterio:   detalle.Criterio.Nombre,
			Valor:      detalle.Valor,
		})
	}

	return breakdown, nil
}

func (s *juradoService) issueInviteToken(juradoID uint) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(juradoID), 10),
		Audience:  jwt.ClaimStrings{inviteTokenScope},
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.inviteTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.inviteSecret))
}

func (s *juradoService) parseInviteToken(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.inviteSecret), nil
	}, jwt.WithAudience(inviteTokenScope), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid invite token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, fmt.Errorf("invalid invite token claims")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid invite token subject")
	}

	return uint(id), nil
}

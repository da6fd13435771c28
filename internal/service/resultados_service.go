package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/repository"
)

const resultadosCacheKey = "resultados:videojuegos"

// ResultadosService produces the aggregated scoreboard across all active
// evaluations, cached in Redis for the configured TTL.
type ResultadosService interface {
	Scoreboard(ctx context.Context) ([]dto.ResultadoVideojuegoResponse, error)
}

type resultadosService struct {
	evaluaciones repository.EvaluacionRepository
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

// NewResultadosService builds the scoreboard aggregator.
func NewResultadosService(evaluacionRepo repository.EvaluacionRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) ResultadosService {
	return &resultadosService{
		evaluaciones: evaluacionRepo,
		cache:        cache,
		cacheTTL:     ttl,
		logger:       logger.With().Str("component", "resultados_service").Logger(),
	}
}

func (s *resultadosService) Scoreboard(ctx context.Context) ([]dto.ResultadoVideojuegoResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, resultadosCacheKey).Result(); err == nil {
			var response []dto.ResultadoVideojuegoResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("scoreboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read scoreboard cache")
		}
	}

	resultados, err := s.evaluaciones.ResumenPorVideojuego(ctx)
	if err != nil {
		return nil, err
	}

	response := dto.NewResultadoResponseSlice(resultados)

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, resultadosCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store scoreboard cache")
			}
		}
	}

	return response, nil
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

// ResultadosHandler exposes the aggregated scoreboard.
type ResultadosHandler struct {
	service service.ResultadosService
	logger  zerolog.Logger
}

// NewResultadosHandler builds a scoreboard handler instance.
func NewResultadosHandler(service service.ResultadosService, logger zerolog.Logger) *ResultadosHandler {
	return &ResultadosHandler{
		service: service,
		logger:  logger.With().Str("component", "resultados_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *ResultadosHandler) Register(router fiber.Router) {
	router.Get("", h.scoreboard)
}

func (h *ResultadosHandler) scoreboard(c *fiber.Ctx) error {
	resultados, err := h.service.Scoreboard(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "resultados retrieved", resultados)
}

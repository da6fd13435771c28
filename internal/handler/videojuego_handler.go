package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

// VideojuegoHandler manages game submission endpoints.
type VideojuegoHandler struct {
	service service.VideojuegoService
	logger  zerolog.Logger
}

// NewVideojuegoHandler builds a game submission handler instance.
func NewVideojuegoHandler(service service.VideojuegoService, logger zerolog.Logger) *VideojuegoHandler {
	return &VideojuegoHandler{
		service: service,
		logger:  logger.With().Str("component", "videojuego_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *VideojuegoHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Post("/:id/portada", h.subirPortada)
	router.Post("/:id/evaluaciones", h.registrarEvaluacion)
}

func (h *VideojuegoHandler) create(c *fiber.Ctx) error {
	var payload dto.VideojuegoCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	videojuego, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "videojuego created", videojuego)
}

func (h *VideojuegoHandler) list(c *fiber.Ctx) error {
	videojuegos, err := h.service.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "videojuegos retrieved", videojuegos)
}

func (h *VideojuegoHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	videojuego, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "videojuego retrieved", videojuego)
}

func (h *VideojuegoHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.VideojuegoUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	videojuego, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "videojuego updated", videojuego)
}

func (h *VideojuegoHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Context(), id); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VideojuegoHandler) subirPortada(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}

	videojuego, err := h.service.SubirPortada(c.Context(), id, file)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "portada uploaded", videojuego)
}

func (h *VideojuegoHandler) registrarEvaluacion(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EvaluacionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.RegistrarEvaluacion(c.Context(), id, payload); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "evaluacion registered", nil)
}

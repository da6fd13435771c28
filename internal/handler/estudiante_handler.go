package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

// EstudianteHandler manages student endpoints.
type EstudianteHandler struct {
	service service.EstudianteService
	logger  zerolog.Logger
}

// NewEstudianteHandler builds a student handler instance.
func NewEstudianteHandler(service service.EstudianteService, logger zerolog.Logger) *EstudianteHandler {
	return &EstudianteHandler{
		service: service,
		logger:  logger.With().Str("component", "estudiante_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *EstudianteHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *EstudianteHandler) create(c *fiber.Ctx) error {
	var payload dto.EstudianteCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	estudiante, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "estudiante created", estudiante)
}

func (h *EstudianteHandler) list(c *fiber.Ctx) error {
	estudiantes, err := h.service.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "estudiantes retrieved", estudiantes)
}

func (h *EstudianteHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	estudiante, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "estudiante retrieved", estudiante)
}

func (h *EstudianteHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EstudianteUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	estudiante, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "estudiante updated", estudiante)
}

func (h *EstudianteHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Context(), id); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

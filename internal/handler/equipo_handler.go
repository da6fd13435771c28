package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

// EquipoHandler manages team endpoints.
type EquipoHandler struct {
	service service.EquipoService
	logger  zerolog.Logger
}

// NewEquipoHandler builds a team handler instance.
func NewEquipoHandler(service service.EquipoService, logger zerolog.Logger) *EquipoHandler {
	return &EquipoHandler{
		service: service,
		logger:  logger.With().Str("component", "equipo_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *EquipoHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *EquipoHandler) create(c *fiber.Ctx) error {
	var payload dto.EquipoCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	equipo, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "equipo created", equipo)
}

func (h *EquipoHandler) list(c *fiber.Ctx) error {
	filter := dto.EquipoListFilter{}

	limit, err := parseQueryIntPtr(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	filter.Limit = limit

	materiaID, err := parseQueryUint(c, "materiaId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	filter.MateriaID = materiaID

	nrcID, err := parseQueryUint(c, "nrc")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	filter.NrcID = nrcID

	equipos, err := h.service.List(c.Context(), filter)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "equipos retrieved", equipos)
}

func (h *EquipoHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	equipo, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "equipo retrieved", equipo)
}

func (h *EquipoHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EquipoUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	equipo, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "equipo updated", equipo)
}

func (h *EquipoHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	equipo, err := h.service.Remove(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "equipo removed", equipo)
}

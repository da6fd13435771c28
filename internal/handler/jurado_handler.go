package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/dto"
	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

// JuradoHandler manages juror endpoints, including the invitation
// confirmation and evaluation read paths.
type JuradoHandler struct {
	service service.JuradoService
	logger  zerolog.Logger
}

// NewJuradoHandler builds a juror handler instance.
func NewJuradoHandler(service service.JuradoService, logger zerolog.Logger) *JuradoHandler {
	return &JuradoHandler{
		service: service,
		logger:  logger.With().Str("component", "jurado_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group. The literal
// confirmar-invitacion path is registered before the parameterized ones so
// it wins the match.
func (h *JuradoHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Patch("/confirmar-invitacion", h.confirmarInvitacion)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
	router.Get("/:id/evaluaciones", h.evaluacionesRealizadas)
	router.Get("/:juradoId/evaluaciones/:videojuegoId", h.detalleEvaluacion)
}

func (h *JuradoHandler) create(c *fiber.Ctx) error {
	var payload dto.JuradoCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	jurado, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "jurado invited", jurado)
}

func (h *JuradoHandler) list(c *fiber.Ctx) error {
	jurados, err := h.service.List(c.Context())
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "jurados retrieved", jurados)
}

func (h *JuradoHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	jurado, err := h.service.Get(c.Context(), id)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "jurado retrieved", jurado)
}

func (h *JuradoHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.JuradoUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	jurado, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "jurado updated", jurado)
}

func (h *JuradoHandler) remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Remove(c.Context(), id); err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *JuradoHandler) confirmarInvitacion(c *fiber.Ctx) error {
	var payload dto.ConfirmarInvitacionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	jurado, err := h.service.ConfirmarInvitacion(c.Context(), payload)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "invitation confirmed", jurado)
}

func (h *JuradoHandler) evaluacionesRealizadas(c *fiber.Ctx) error {
	evaluaciones, err := h.service.EvaluacionesRealizadas(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "evaluaciones retrieved", evaluaciones)
}

func (h *JuradoHandler) detalleEvaluacion(c *fiber.Ctx) error {
	detalle, err := h.service.DetalleEvaluacion(c.Context(), c.Params("juradoId"), c.Params("videojuegoId"))
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "detalle de evaluacion retrieved", detalle)
}

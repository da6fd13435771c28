package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gamejam-api/internal/middleware"
	"github.com/noah-isme/gamejam-api/internal/service"
	"github.com/noah-isme/gamejam-api/internal/utils"
)

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return uint(parsed), nil
}

func parseQueryUint(c *fiber.Ctx, key string) (*uint, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	result := uint(parsed)
	return &result, nil
}

func parseQueryIntPtr(c *fiber.Ctx, key string) (*int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	return &parsed, nil
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// sendServiceError maps the service error taxonomy onto HTTP status codes:
// not found -> 404, conflict -> 409, invalid input and failed payload
// validation -> 400, everything else -> 500.
func sendServiceError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var notFound *service.NotFoundError
	var conflict *service.ConflictError
	var invalid *service.InvalidInputError
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &notFound):
		return utils.SendError(c, fiber.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		return utils.SendError(c, fiber.StatusConflict, conflict.Error())
	case errors.As(err, &invalid):
		return utils.SendError(c, fiber.StatusBadRequest, invalid.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		requestLogger(logger, c).Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

package handlers

import (
	"errors"
	"log/slog"

	"github.com/contractflow/contractflow/internal/apperr"
	"github.com/contractflow/contractflow/internal/dto"
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.NewField(apperr.KindInvalidValue, name, "Invalid UUID format")
	}
	return id, nil
}

// respondError maps a classified error to its status code. Validation
// classes are 400s with field/conflict context, NotFound is a 404, and
// everything else is logged, reported and surfaced as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind != apperr.KindInternal {
		status := fiber.StatusBadRequest
		if ae.Kind == apperr.KindNotFound {
			status = fiber.StatusNotFound
		}
		resp := dto.ErrorResponse{Error: true, Message: ae.Message, Field: ae.Field}
		if ae.ConflictID != uuid.Nil {
			resp.ConflictID = ae.ConflictID.String()
		}
		return c.Status(status).JSON(resp)
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	sentry.CaptureException(err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

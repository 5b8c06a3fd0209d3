// Package handler holds the shared pieces of the web handlers.
package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	customerctl "github.com/GeovaneMT/LavaCar/internal/db/controller/customer"
	"github.com/GeovaneMT/LavaCar/internal/policy"
)

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// UserIDHeader carries the authenticated user id, set by the gateway
	// in front of this service.
	UserIDHeader = "X-User-ID"

	// UserIDLocal is the fiber.Locals key holding the current user id.
	UserIDLocal = "userID"

	// ErrNilACSFatalLogMsg is used if the app, cfg or service pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or service is nil"
)

// UserID returns the current user id set by the auth middleware.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDLocal).(string)
	return userID
}

// RenderError maps service errors onto http responses. Unknown errors are
// logged and returned as a plain 500 without leaking details.
func RenderError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, policy.ErrNotAllowed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not allowed"})
	case errors.Is(err, policy.ErrResourceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	case errors.Is(err, customerctl.ErrEmailExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already taken"})
	case errors.As(err, &validationErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErrs.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

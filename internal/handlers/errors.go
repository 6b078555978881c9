package handlers

import (
	"errors"

	"kickshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Error kinds reported in response bodies.
const (
	KindValidation   = "validation_error"
	KindConflict     = "conflict"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindRateLimited  = "rate_limited"
	KindInternal     = "internal"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Kind    string            `json:"kind"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ValidationError reports a malformed request body or query.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrorHandler maps errors returned by handlers and middleware to JSON responses.
// Unclassified errors are logged and answered with a generic 500.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status == fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"request_id": c.Locals("requestid"),
				"method":     c.Method(),
				"path":       c.Path(),
				"error":      err.Error(),
			}).Error("request failed")
		}
		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, ErrorResponse) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, ErrorResponse{Message: verr.Message, Kind: KindValidation, Errors: verr.Fields}
	}

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch {
		case errors.Is(svcErr.Kind, services.ErrValidation):
			return fiber.StatusBadRequest, ErrorResponse{Message: svcErr.Message, Kind: KindValidation}
		case errors.Is(svcErr.Kind, services.ErrConflict):
			return fiber.StatusBadRequest, ErrorResponse{Message: svcErr.Message, Kind: KindConflict}
		case errors.Is(svcErr.Kind, services.ErrUnauthorized):
			return fiber.StatusUnauthorized, ErrorResponse{Message: svcErr.Message, Kind: KindUnauthorized}
		case errors.Is(svcErr.Kind, services.ErrForbidden):
			return fiber.StatusForbidden, ErrorResponse{Message: svcErr.Message, Kind: KindForbidden}
		case errors.Is(svcErr.Kind, services.ErrNotFound):
			return fiber.StatusNotFound, ErrorResponse{Message: svcErr.Message, Kind: KindNotFound}
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return fe.Code, ErrorResponse{Message: fe.Message, Kind: KindNotFound}
		case fe.Code == fiber.StatusTooManyRequests:
			return fe.Code, ErrorResponse{Message: fe.Message, Kind: KindRateLimited}
		case fe.Code < fiber.StatusInternalServerError:
			return fe.Code, ErrorResponse{Message: fe.Message, Kind: KindValidation}
		}
	}

	return fiber.StatusInternalServerError, ErrorResponse{Message: "Internal server error", Kind: KindInternal}
}

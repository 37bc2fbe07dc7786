package http

import (
	"errors"
	"net/http"

	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps core errors to responses. Unexpected errors are logged
// and answered with a generic 500 body.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	var validationErr *errs.ValidationFailedError
	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:     http.StatusBadRequest,
			Message:  errs.ErrValidationFailed.Error(),
			Messages: validationErr.Messages,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	s.logger.ErrorContext(ctx.Request().Context(), fallback,
		"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// describeError maps an error from any layer to its HTTP status and body.
func describeError(err error) ErrorResponse {
	var (
		assignmentErr *commands.AssignmentError
		validationErr *errs.ValidationError
		requestErr    *openapi3filter.RequestError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &assignmentErr):
		id := toAPIUUID(assignmentErr.OrderID)
		return ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "order was saved but could not be assigned, retry the assignment",
			OrderID: &id,
		}

	case errors.As(err, &validationErr):
		return ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: validationErr.Error(),
			Fields:  validationErr.Fields,
		}

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		wrapped := errs.NewValidationError(err)
		return ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: wrapped.Error(),
			Fields:  wrapped.Fields,
		}

	case errors.As(err, &requestErr):
		resp := ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: requestErr.Error(),
		}
		if requestErr.Parameter != nil {
			resp.Fields = []string{requestErr.Parameter.Name}
		}
		return resp

	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return ErrorResponse{Code: http.StatusUnauthorized, Message: err.Error()}

	case errors.Is(err, errs.ErrObjectNotFound):
		return ErrorResponse{Code: http.StatusNotFound, Message: err.Error()}

	case errors.Is(err, commands.ErrOrderIsNotPending),
		errors.Is(err, order.ErrStatusTransitionIsNotAllowed),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return ErrorResponse{Code: http.StatusConflict, Message: err.Error()}

	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		return ErrorResponse{Code: httpErr.Code, Message: message}

	default:
		return ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}

// NewErrorHandler answers every failed request with an ErrorResponse. Server errors are
// logged with their cause, which is never sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := describeError(err)
		if resp.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", resp.Code,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(resp.Code)
		} else {
			err = c.JSON(resp.Code, resp)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", err)
		}
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sogolo/sogolo-escrow-service/internal/delivery/http/dto"
	"github.com/sogolo/sogolo-escrow-service/internal/domain"
)

// errorResponse translates the engine's typed errors into HTTP statuses.
// This is the only place the two vocabularies meet.
func errorResponse(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrValidationFailed):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrTransactionNotFound), errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

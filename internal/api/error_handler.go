package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// notActiveResponse extends the envelope with the account's acceptance status
// so the frontend can distinguish a pending review from a refusal.
type notActiveResponse struct {
	Message    string `json:"message"`
	Status     int    `json:"status"`
	IsAccepted string `json:"is_accepted"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": ..., "status": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var notActive *domain.NotActiveError
		if errors.As(err, &notActive) {
			_ = c.JSON(http.StatusLocked, notActiveResponse{
				Message:    notActive.Error(),
				Status:     http.StatusLocked,
				IsAccepted: string(notActive.Status),
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg, Status: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrGoogleTokenMissing):
		return http.StatusBadRequest, domain.ErrGoogleTokenMissing.Error()
	case errors.Is(err, domain.ErrGoogleTokenInvalid):
		return http.StatusUnauthorized, domain.ErrGoogleTokenInvalid.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "company not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrDuplicateApplication):
		return http.StatusConflict, domain.ErrDuplicateApplication.Error()
	case errors.Is(err, domain.ErrOfferClosed):
		return http.StatusUnprocessableEntity, domain.ErrOfferClosed.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrStatusDecided):
		return http.StatusConflict, domain.ErrStatusDecided.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, domain.ErrInvalidStatus.Error()
	case errors.Is(err, domain.ErrRoleNotFound):
		// Configuration failure. Never leak the cause to the client.
		log.Error().Err(err).Msg("default role missing from store")
		return http.StatusInternalServerError, "internal server error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/api/middleware"
	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/upstream"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Passes upstream status codes through so the browser sees the same
//     outcome it would see talking to the hotel API directly.
//   - Clears the session cookie on every 401 so a dead session is not
//     replayed on the next request.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger, cookieName string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			middleware.ClearSessionCookie(c, cookieName)
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Date-range validation failures are the caller's problem.
	switch {
	case errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrInvertedRange):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Session failures all collapse to 401.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Upstream answered with an error status: pass the outcome through,
	// except 5xx which becomes a 502 without the upstream's internals.
	var se *upstream.StatusError
	if errors.As(err, &se) {
		switch {
		case se.Code == http.StatusUnauthorized:
			return http.StatusUnauthorized, "not authenticated"
		case se.Code >= http.StatusInternalServerError:
			log.Error().Int("upstream_status", se.Code).Str("path", c.Path()).Msg("upstream server error")
			return http.StatusBadGateway, "upstream error"
		default:
			return se.Code, se.Message
		}
	}

	// Upstream never answered.
	if errors.Is(err, upstream.ErrUnavailable) {
		log.Error().Err(err).Str("path", c.Path()).Msg("upstream unreachable")
		return http.StatusBadGateway, "upstream unavailable"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "upstream timeout"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

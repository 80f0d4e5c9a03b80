package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/gateway"
)

// errorResponse is the canonical error envelope for JSON endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// errorPage feeds the standalone error template.
type errorPage struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Resolves gateway and domain errors to deterministic HTTP status codes.
//   - Answers /api/* requests with a JSON envelope and everything else with
//     the HTML error pages.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		if wantsJSON(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}

		if code == http.StatusNotFound {
			if c.Render(code, "notfound.html", nil) == nil {
				return
			}
		}
		if c.Render(code, "error.html", errorPage{Status: code, Message: msg}) != nil {
			_ = c.String(code, msg)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/health") || path == "/metrics"
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Upstream failures carry their own status and detail text. A transport
	// failure has no status and surfaces as a bad gateway.
	if apiErr, ok := gateway.IsAPIError(err); ok {
		code := apiErr.Status
		if code == 0 {
			code = http.StatusBadGateway
		}
		return code, apiErr.Detail
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session expired"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gymtech/dashboard/internal/api/middleware"
	"github.com/gymtech/dashboard/internal/core/domain"
	"github.com/gymtech/dashboard/internal/gateway"
)

// ctxSession extracts the session injected by the session middleware. The
// route guards run first, so a missing session here means a wiring mistake
// rather than an anonymous visitor.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return sess, nil
}

// detailOf turns a gateway failure into the message shown in the page error
// banner. Upstream detail text is passed through verbatim; anything else
// collapses to a generic line.
func detailOf(err error) string {
	if apiErr, ok := gateway.IsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "something went wrong, please try again"
}

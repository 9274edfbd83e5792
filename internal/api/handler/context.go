package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxToken extracts the upstream bearer token injected by the Session
// middleware. An empty token means the middleware did not run on this
// route; fail fast with 401 before any upstream call.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}

// optionalToken returns the token when a session was resolved, or "" for
// anonymous requests on routes behind OptionalSession.
func optionalToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}

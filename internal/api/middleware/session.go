package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// Session resolves the session cookie and injects the upstream token and
// role into context. Requests without a usable session are rejected with
// 401 and the stale cookie is cleared.
func Session(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			sess, err := sessions.Current(c.Request().Context(), cookie.Value)
			if err != nil {
				ClearSessionCookie(c, cookieName)
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set("session_id", sess.ID)
			c.Set("token", sess.Token)
			c.Set("role", sess.Role)

			return next(c)
		}
	}
}

// OptionalSession resolves the session cookie when present but lets the
// request through anonymously when it is missing or invalid. Guests search
// room availability without logging in.
func OptionalSession(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := sessions.Current(c.Request().Context(), cookie.Value)
			if err != nil {
				ClearSessionCookie(c, cookieName)
				return next(c)
			}

			c.Set("session_id", sess.ID)
			c.Set("token", sess.Token)
			c.Set("role", sess.Role)

			return next(c)
		}
	}
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context, cookieName string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

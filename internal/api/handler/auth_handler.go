package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/api/metrics"
	"github.com/grandhorizon/booking-gateway/internal/api/middleware"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// SessionCookie describes the cookie the gateway issues on login.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler owns the login/logout/register surface. The upstream issues
// the tokens; the handler only moves them between the upstream response
// and the session store, and never exposes one to the browser.
type AuthHandler struct {
	auth     ports.AuthClient
	sessions ports.SessionService
	cookie   SessionCookie
}

func NewAuthHandler(auth ports.AuthClient, sessions ports.SessionService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
}

// Login authenticates against the upstream and establishes a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	sess, err := h.sessions.Login(c.Request().Context(), result.Token, result.Role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Role: sess.Role})
}

// Register creates a guest account upstream. No session is established;
// the browser goes through Login afterwards.
//
// @Summary      Register a guest account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"status": "registered"})
}

// Logout tears the session down. Always succeeds.
//
// @Summary      Log out
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	h.sessions.Logout(c.Request().Context(), sessionID)
	middleware.ClearSessionCookie(c, h.cookie.Name)
	return c.NoContent(http.StatusNoContent)
}

// Session restores authentication state after a page load. Unlike the
// per-request middleware it confirms the token with the upstream, so a
// token revoked server-side is caught here. Never returns an error
// status: an unusable session is reported as authenticated=false.
//
// @Summary      Restore session state
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(h.cookie.Name)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}

	sess, err := h.sessions.Validate(c.Request().Context(), cookie.Value)
	if err != nil {
		middleware.ClearSessionCookie(c, h.cookie.Name)
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Role: sess.Role})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// ClientHandler serves the admin client-management screens.
type ClientHandler struct {
	clients ports.ClientDirectory
}

func NewClientHandler(clients ports.ClientDirectory) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List handles GET /api/admin/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   domain.Client
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	clients, err := h.clients.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create handles POST /api/admin/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details with initial password"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	client := req.toDomain()
	if err := h.clients.Create(c.Request().Context(), token, client, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /api/admin/clients/:email. Email is the client's
// identity upstream and cannot be changed through this route.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        email  path      string         true  "Client email"
// @Param        body   body      clientRequest  true  "Updated client details"
// @Success      200    {object}  domain.Client
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/admin/clients/{email} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	client := req.toDomain()
	if err := h.clients.Update(c.Request().Context(), token, c.Param("email"), client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /api/admin/clients/:email.
//
// @Summary      Delete a client
// @Tags         clients
// @Param        email  path  string  true  "Client email"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/clients/{email} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	if err := h.clients.Delete(c.Request().Context(), token, c.Param("email")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

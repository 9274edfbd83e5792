package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// AccountHandler serves the logged-in guest's own profile. The upstream
// resolves the account from the bearer token; no identifier appears in
// the path.
type AccountHandler struct {
	account ports.AccountClient
}

func NewAccountHandler(account ports.AccountClient) *AccountHandler {
	return &AccountHandler{account: account}
}

// Get handles GET /api/account.
//
// @Summary      Get my profile
// @Tags         account
// @Produce      json
// @Success      200  {object}  domain.Client
// @Failure      401  {object}  errorResponse
// @Router       /api/account [get]
func (h *AccountHandler) Get(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	client, err := h.account.Get(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Update handles PUT /api/account.
//
// @Summary      Update my profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Updated profile"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/account [put]
func (h *AccountHandler) Update(c echo.Context) error {
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
	if err := h.account.Update(c.Request().Context(), token, client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

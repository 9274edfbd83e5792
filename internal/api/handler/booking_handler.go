package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/api/metrics"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// BookingHandler serves the guest booking lifecycle and the admin
// booking overview.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List handles GET /api/bookings: the caller's own bookings.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListAll handles GET /api/admin/bookings: every booking in the system.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.ListAll(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /api/bookings. On success the response carries the
// external checkout URL; the browser is redirected there to pay.
//
// @Summary      Start a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Stay details"
// @Success      201   {object}  checkoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
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

	link, err := h.bookings.Book(c.Request().Context(), token, ports.CreateBookingInput{
		RoomNr:    req.RoomNr,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
	})
	if err != nil {
		return err
	}

	metrics.BookingCheckoutsTotal.Inc()
	return c.JSON(http.StatusCreated, checkoutResponse{CheckoutLink: link})
}

// Cancel handles DELETE /api/bookings/:startDate/:roomNr. The composite
// key mirrors the upstream API's booking identity.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Param        startDate  path  string  true  "Check-in date (YYYY-MM-DD)"
// @Param        roomNr     path  string  true  "Room number"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/bookings/{startDate}/{roomNr} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	if err := h.bookings.Cancel(c.Request().Context(), token, c.Param("startDate"), c.Param("roomNr")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Confirm handles GET /api/payments/checkout-session: the post-payment
// success page looks up what was just paid for.
//
// @Summary      Confirm a completed checkout
// @Tags         bookings
// @Produce      json
// @Param        session_id  query     string  true  "Checkout session ID"
// @Success      200         {object}  confirmationResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/payments/checkout-session [get]
func (h *BookingHandler) Confirm(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	session, err := h.bookings.Confirm(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, confirmationResponse{
		RoomNr:      session.RoomNr,
		StartDate:   session.StartDate,
		EndDate:     session.EndDate,
		AmountTotal: session.AmountTotal,
	})
}

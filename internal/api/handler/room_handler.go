package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// RoomHandler serves the public availability search, the AI
// recommendation endpoint, and the admin room CRUD set.
type RoomHandler struct {
	availability ports.AvailabilityService
	rooms        ports.RoomCatalog
}

func NewRoomHandler(availability ports.AvailabilityService, rooms ports.RoomCatalog) *RoomHandler {
	return &RoomHandler{availability: availability, rooms: rooms}
}

// Available handles GET /api/rooms/available. Guests may call it without
// a session; a logged-in caller's token is forwarded upstream.
//
// @Summary      Search available rooms
// @Tags         rooms
// @Produce      json
// @Param        startDate     query     string  true   "Check-in date (YYYY-MM-DD)"
// @Param        endDate       query     string  true   "Check-out date (YYYY-MM-DD)"
// @Param        minOccupancy  query     int     false  "Minimum guest capacity"
// @Success      200           {array}   domain.Room
// @Failure      422           {object}  errorResponse
// @Router       /api/rooms/available [get]
func (h *RoomHandler) Available(c echo.Context) error {
	minOccupancy, _ := strconv.Atoi(c.QueryParam("minOccupancy"))
	rooms, err := h.availability.Search(c.Request().Context(), optionalToken(c), ports.AvailabilityQuery{
		StartDate:    c.QueryParam("startDate"),
		EndDate:      c.QueryParam("endDate"),
		MinOccupancy: minOccupancy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Recommend handles POST /api/rooms/recommend: AI-assisted room selection
// for the date range and the guest's free-text preferences.
//
// @Summary      Recommend rooms
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      recommendRequest  true  "Search criteria and preferences"
// @Success      200   {array}   domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/rooms/recommend [post]
func (h *RoomHandler) Recommend(c echo.Context) error {
	var req recommendRequest
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

	rooms, err := h.availability.Recommend(c.Request().Context(), token, ports.RecommendationQuery{
		AvailabilityQuery: ports.AvailabilityQuery{
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			MinOccupancy: req.MinOccupancy,
		},
		Preferences: req.Preferences,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// List handles GET /api/admin/rooms.
//
// @Summary      List all rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}   domain.Room
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	rooms, err := h.rooms.List(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /api/admin/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/admin/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomRequest
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

	room := req.toDomain()
	if err := h.rooms.Create(c.Request().Context(), token, room); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /api/admin/rooms/:roomNr.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        roomNr  path      string       true  "Room number"
// @Param        body    body      roomRequest  true  "Updated room details"
// @Success      200     {object}  domain.Room
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/admin/rooms/{roomNr} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	var req roomRequest
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

	room := req.toDomain()
	if err := h.rooms.Update(c.Request().Context(), token, c.Param("roomNr"), room); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/admin/rooms/:roomNr.
//
// @Summary      Delete a room
// @Tags         rooms
// @Param        roomNr  path  string  true  "Room number"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/rooms/{roomNr} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}
	if err := h.rooms.Delete(c.Request().Context(), token, c.Param("roomNr")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

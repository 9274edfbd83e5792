package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// BookingsClient wraps the upstream booking endpoints.
type BookingsClient struct {
	c *Client
}

func NewBookingsClient(c *Client) *BookingsClient {
	return &BookingsClient{c: c}
}

// createBookingRequest mirrors the upstream wire shape: the booking is
// identified by its composite key and carries a price snapshot plus a
// reference to the room being booked.
type createBookingRequest struct {
	ID      domain.BookingID `json:"id"`
	Price   float64          `json:"price"`
	Room    bookingRoomRef   `json:"room"`
	EndDate string           `json:"endDate"`
}

type bookingRoomRef struct {
	RoomNr string `json:"roomNr"`
}

type createBookingResponse struct {
	CheckoutLink string `json:"checkoutLink"`
}

func (b *BookingsClient) List(ctx context.Context, token string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := b.c.do(ctx, call{
		endpoint: "bookings_list",
		method:   http.MethodGet,
		path:     "/api/bookings",
		token:    token,
	}, &bookings)
	return bookings, err
}

// ListAll returns every booking in the system (admin endpoint).
func (b *BookingsClient) ListAll(ctx context.Context, token string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := b.c.do(ctx, call{
		endpoint: "bookings_list_all",
		method:   http.MethodGet,
		path:     "/api/admin/bookings",
		token:    token,
	}, &bookings)
	return bookings, err
}

// Create starts a booking and returns the external checkout URL. A
// response without a checkout link is treated as a failure: the booking
// cannot be paid for without it.
func (b *BookingsClient) Create(ctx context.Context, token string, in ports.CreateBookingInput) (string, error) {
	var resp createBookingResponse
	err := b.c.do(ctx, call{
		endpoint: "bookings_create",
		method:   http.MethodPost,
		path:     "/api/bookings",
		token:    token,
		body: createBookingRequest{
			ID:      domain.BookingID{StartDate: in.StartDate, RoomNr: in.RoomNr},
			Price:   in.Price,
			Room:    bookingRoomRef{RoomNr: in.RoomNr},
			EndDate: in.EndDate,
		},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.CheckoutLink == "" {
		return "", fmt.Errorf("bookings_create: missing checkout link in response")
	}
	return resp.CheckoutLink, nil
}

func (b *BookingsClient) Cancel(ctx context.Context, token, startDate, roomNr string) error {
	return b.c.do(ctx, call{
		endpoint: "bookings_cancel",
		method:   http.MethodDelete,
		path:     "/api/bookings/" + url.PathEscape(startDate) + "/" + url.PathEscape(roomNr),
		token:    token,
	}, nil)
}

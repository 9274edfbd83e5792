package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// RoomsClient wraps the upstream room endpoints: the public availability
// search plus the admin CRUD set.
type RoomsClient struct {
	c *Client
}

func NewRoomsClient(c *Client) *RoomsClient {
	return &RoomsClient{c: c}
}

// Available searches rooms free over the query range. The token is
// optional: guests may search without logging in.
func (r *RoomsClient) Available(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("startDate", q.StartDate)
	query.Set("endDate", q.EndDate)
	query.Set("minOccupancy", strconv.Itoa(q.MinOccupancy))

	var rooms []domain.Room
	err := r.c.do(ctx, call{
		endpoint: "rooms_available",
		method:   http.MethodGet,
		path:     "/api/main/available-rooms",
		query:    query,
		token:    token,
	}, &rooms)
	return rooms, err
}

func (r *RoomsClient) List(ctx context.Context, token string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.c.do(ctx, call{
		endpoint: "rooms_list",
		method:   http.MethodGet,
		path:     "/api/rooms",
		token:    token,
	}, &rooms)
	return rooms, err
}

func (r *RoomsClient) Create(ctx context.Context, token string, room domain.Room) error {
	return r.c.do(ctx, call{
		endpoint: "rooms_create",
		method:   http.MethodPost,
		path:     "/api/rooms",
		token:    token,
		body:     room,
	}, nil)
}

func (r *RoomsClient) Update(ctx context.Context, token, roomNr string, room domain.Room) error {
	return r.c.do(ctx, call{
		endpoint: "rooms_update",
		method:   http.MethodPut,
		path:     "/api/rooms/" + url.PathEscape(roomNr),
		token:    token,
		body:     room,
	}, nil)
}

func (r *RoomsClient) Delete(ctx context.Context, token, roomNr string) error {
	return r.c.do(ctx, call{
		endpoint: "rooms_delete",
		method:   http.MethodDelete,
		path:     "/api/rooms/" + url.PathEscape(roomNr),
		token:    token,
	}, nil)
}

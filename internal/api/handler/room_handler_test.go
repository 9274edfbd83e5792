package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

type stubAvailability struct {
	searchFn    func(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error)
	recommendFn func(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error)
}

func (s *stubAvailability) Search(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
	return s.searchFn(ctx, token, q)
}

func (s *stubAvailability) Recommend(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error) {
	return s.recommendFn(ctx, token, q)
}

type stubRoomCatalog struct {
	created []domain.Room
	updated map[string]domain.Room
	deleted []string
}

func (s *stubRoomCatalog) Available(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRoomCatalog) List(ctx context.Context, token string) ([]domain.Room, error) {
	return []domain.Room{{RoomNr: "101"}, {RoomNr: "102"}}, nil
}

func (s *stubRoomCatalog) Create(ctx context.Context, token string, room domain.Room) error {
	s.created = append(s.created, room)
	return nil
}

func (s *stubRoomCatalog) Update(ctx context.Context, token, roomNr string, room domain.Room) error {
	if s.updated == nil {
		s.updated = map[string]domain.Room{}
	}
	s.updated[roomNr] = room
	return nil
}

func (s *stubRoomCatalog) Delete(ctx context.Context, token, roomNr string) error {
	s.deleted = append(s.deleted, roomNr)
	return nil
}

func TestRoomHandler_Available_Guest(t *testing.T) {
	avail := &stubAvailability{
		searchFn: func(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
			if token != "" {
				t.Fatalf("expected empty token for guest search, got %q", token)
			}
			if q.StartDate != "2026-10-01" || q.EndDate != "2026-10-05" || q.MinOccupancy != 2 {
				t.Fatalf("unexpected query: %+v", q)
			}
			return []domain.Room{{RoomNr: "101", Available: true}}, nil
		},
	}
	h := NewRoomHandler(avail, &stubRoomCatalog{})

	c, rec := newTestContext(t, http.MethodGet,
		"/api/rooms/available?startDate=2026-10-01&endDate=2026-10-05&minOccupancy=2", "")

	if err := h.Available(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rooms []domain.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNr != "101" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestRoomHandler_Available_DateErrorPassthrough(t *testing.T) {
	avail := &stubAvailability{
		searchFn: func(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
			return nil, domain.ErrPastDate
		},
	}
	h := NewRoomHandler(avail, &stubRoomCatalog{})

	c, _ := newTestContext(t, http.MethodGet, "/api/rooms/available?startDate=2020-01-01&endDate=2020-01-02", "")
	if err := h.Available(c); !errors.Is(err, domain.ErrPastDate) {
		t.Fatalf("expected date error passthrough, got %v", err)
	}
}

func TestRoomHandler_Recommend(t *testing.T) {
	avail := &stubAvailability{
		recommendFn: func(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error) {
			if token != "tok" {
				t.Fatalf("unexpected token: %s", token)
			}
			if q.Preferences != "quiet, sea view" || q.StartDate != "2026-10-01" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return []domain.Room{{RoomNr: "301", HasSeaView: true}}, nil
		},
	}
	h := NewRoomHandler(avail, &stubRoomCatalog{})

	c, rec := newTestContext(t, http.MethodPost, "/api/rooms/recommend",
		`{"startDate":"2026-10-01","endDate":"2026-10-05","preferences":"quiet, sea view"}`)
	c.Set("token", "tok")

	if err := h.Recommend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoomHandler_Recommend_MissingPreferences(t *testing.T) {
	h := NewRoomHandler(&stubAvailability{
		recommendFn: func(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}, &stubRoomCatalog{})

	c, _ := newTestContext(t, http.MethodPost, "/api/rooms/recommend",
		`{"startDate":"2026-10-01","endDate":"2026-10-05"}`)
	c.Set("token", "tok")

	err := h.Recommend(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoomHandler_Create(t *testing.T) {
	catalog := &stubRoomCatalog{}
	h := NewRoomHandler(&stubAvailability{}, catalog)

	c, rec := newTestContext(t, http.MethodPost, "/api/admin/rooms",
		`{"roomNr":"101","floor":1,"maxOccupancy":2,"roomType":"DOUBLE","basePrice":120,"rating":4.5,"available":true}`)
	c.Set("token", "tok")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(catalog.created) != 1 || catalog.created[0].RoomNr != "101" || catalog.created[0].BasePrice != 120 {
		t.Fatalf("unexpected created rooms: %+v", catalog.created)
	}
}

func TestRoomHandler_Create_InvalidOccupancy(t *testing.T) {
	h := NewRoomHandler(&stubAvailability{}, &stubRoomCatalog{})

	c, _ := newTestContext(t, http.MethodPost, "/api/admin/rooms",
		`{"roomNr":"101","maxOccupancy":0,"roomType":"DOUBLE","basePrice":120}`)
	c.Set("token", "tok")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoomHandler_Update(t *testing.T) {
	catalog := &stubRoomCatalog{}
	h := NewRoomHandler(&stubAvailability{}, catalog)

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/rooms/101",
		`{"roomNr":"101","maxOccupancy":3,"roomType":"SUITE","basePrice":200}`)
	c.Set("token", "tok")
	c.SetParamNames("roomNr")
	c.SetParamValues("101")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if catalog.updated["101"].MaxOccupancy != 3 {
		t.Fatalf("unexpected update: %+v", catalog.updated)
	}
}

func TestRoomHandler_Delete(t *testing.T) {
	catalog := &stubRoomCatalog{}
	h := NewRoomHandler(&stubAvailability{}, catalog)

	c, rec := newTestContext(t, http.MethodDelete, "/api/admin/rooms/101", "")
	c.Set("token", "tok")
	c.SetParamNames("roomNr")
	c.SetParamValues("101")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(catalog.deleted) != 1 || catalog.deleted[0] != "101" {
		t.Fatalf("unexpected deletes: %v", catalog.deleted)
	}
}

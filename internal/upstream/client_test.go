package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zerolog.Nop()), srv
}

func TestAuthClient_Login(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req["email"] != "a@example.com" || req["password"] != "s3cret" {
			t.Fatalf("unexpected credentials: %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-1", "role": "ROLE_CLIENT"})
	})

	got, err := NewAuthClient(c).Login(context.Background(), "a@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.Token != "tok-1" || got.Role != "ROLE_CLIENT" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAuthClient_Login_ErrorMessagePassthrough(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password."})
	})

	_, err := NewAuthClient(c).Login(context.Background(), "a@example.com", "wrong")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusUnauthorized || se.Message != "Invalid email or password." {
		t.Fatalf("unexpected status error: %+v", se)
	}
}

func TestAuthClient_ValidateToken_SendsBearer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Fatalf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"role": "ROLE_ADMIN"})
	})

	role, err := NewAuthClient(c).ValidateToken(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if role != "ROLE_ADMIN" {
		t.Fatalf("unexpected role: %s", role)
	}
}

func TestAuthClient_ValidateToken_RoleOmitted(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": true})
	})

	role, err := NewAuthClient(c).ValidateToken(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if role != "" {
		t.Fatalf("expected empty role, got %q", role)
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := New(srv.URL, time.Second, zerolog.Nop())

	err := NewAuthClient(c).Logout(context.Background(), "tok")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_CallerDeadlineWins(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewAuthClient(c).ValidateToken(ctx, "tok")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

func TestRoomsClient_Available(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/main/available-rooms" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("startDate") != "2025-02-01" || q.Get("endDate") != "2025-02-05" || q.Get("minOccupancy") != "2" {
			t.Fatalf("unexpected query: %v", q)
		}
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("guest search must not send a bearer header")
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"roomNr": "101", "basePrice": 120.0, "available": true}})
	})

	rooms, err := NewRoomsClient(c).Available(context.Background(), "", ports.AvailabilityQuery{
		StartDate: "2025-02-01", EndDate: "2025-02-05", MinOccupancy: 2,
	})
	if err != nil {
		t.Fatalf("available failed: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNr != "101" || rooms[0].BasePrice != 120 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestBookingsClient_Create(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		id, ok := body["id"].(map[string]any)
		if !ok || id["startDate"] != "2025-02-01" || id["roomNr"] != "101" {
			t.Fatalf("unexpected composite id: %v", body["id"])
		}
		if body["endDate"] != "2025-02-05" || body["price"] != 120.0 {
			t.Fatalf("unexpected body: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"checkoutLink": "https://pay.example.com/cs_1"})
	})

	link, err := NewBookingsClient(c).Create(context.Background(), "tok", ports.CreateBookingInput{
		RoomNr: "101", StartDate: "2025-02-01", EndDate: "2025-02-05", Price: 120,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if link != "https://pay.example.com/cs_1" {
		t.Fatalf("unexpected link: %s", link)
	}
}

func TestBookingsClient_Create_MissingCheckoutLink(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	if _, err := NewBookingsClient(c).Create(context.Background(), "tok", ports.CreateBookingInput{
		RoomNr: "101", StartDate: "2025-02-01", EndDate: "2025-02-05",
	}); err == nil {
		t.Fatalf("expected error for missing checkout link")
	}
}

func TestBookingsClient_Cancel(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/bookings/2025-02-01/101" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := NewBookingsClient(c).Cancel(context.Background(), "tok", "2025-02-01", "101"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
}

func TestPaymentsClient_GetCheckoutSession(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("session_id") != "cs_1" {
			t.Fatalf("unexpected session id: %s", r.URL.Query().Get("session_id"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"metadata":     map[string]string{"roomNr": "101", "startDate": "2025-02-01", "endDate": "2025-02-05"},
			"amount_total": 48000,
		})
	})

	got, err := NewPaymentsClient(c).GetCheckoutSession(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}
	if got.RoomNr != "101" || got.AmountTotal != 48000 {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestClient_PlainTextErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	})

	_, err := NewRoomsClient(c).List(context.Background(), "tok")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Message != "Service Unavailable" {
		t.Fatalf("unexpected message: %q", se.Message)
	}
}

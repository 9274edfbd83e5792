package ports

import (
	"context"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
)

// LoginResult is what the upstream login endpoint returns on success.
type LoginResult struct {
	Token string
	Role  string
}

// RegisterInput carries a new guest registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthClient wraps the upstream authentication endpoints. The bearer token
// is always passed explicitly — the client itself is stateless.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, in RegisterInput) error
	Logout(ctx context.Context, token string) error
	// ValidateToken confirms the token with the upstream and returns the
	// role it reports, or "" when the response omits one.
	ValidateToken(ctx context.Context, token string) (string, error)
}

// AvailabilityQuery selects rooms free over a date range.
type AvailabilityQuery struct {
	StartDate    string
	EndDate      string
	MinOccupancy int
}

// RecommendationQuery extends an availability query with free-text guest
// preferences for the AI recommendation endpoint.
type RecommendationQuery struct {
	AvailabilityQuery
	Preferences string
}

// RoomCatalog wraps the upstream room endpoints: the public availability
// search plus the admin CRUD set.
type RoomCatalog interface {
	// Available searches rooms free over the query range. Token may be empty:
	// guests can search without logging in.
	Available(ctx context.Context, token string, q AvailabilityQuery) ([]domain.Room, error)
	List(ctx context.Context, token string) ([]domain.Room, error)
	Create(ctx context.Context, token string, room domain.Room) error
	Update(ctx context.Context, token, roomNr string, room domain.Room) error
	Delete(ctx context.Context, token, roomNr string) error
}

// CreateBookingInput identifies the room and stay being booked. Price is
// the room's base price snapshot sent along with the request.
type CreateBookingInput struct {
	RoomNr    string
	StartDate string
	EndDate   string
	Price     float64
}

// BookingClient wraps the upstream booking endpoints.
type BookingClient interface {
	List(ctx context.Context, token string) ([]domain.Booking, error)
	// ListAll returns every booking in the system (admin view).
	ListAll(ctx context.Context, token string) ([]domain.Booking, error)
	// Create starts a booking and returns the external checkout URL the
	// browser must be sent to for payment.
	Create(ctx context.Context, token string, in CreateBookingInput) (string, error)
	Cancel(ctx context.Context, token, startDate, roomNr string) error
}

// ClientDirectory wraps the upstream client-management endpoints (admin).
type ClientDirectory interface {
	List(ctx context.Context, token string) ([]domain.Client, error)
	Create(ctx context.Context, token string, client domain.Client, password string) error
	Update(ctx context.Context, token, email string, client domain.Client) error
	Delete(ctx context.Context, token, email string) error
}

// AccountClient wraps the upstream self-service account endpoints.
type AccountClient interface {
	Get(ctx context.Context, token string) (domain.Client, error)
	Update(ctx context.Context, token string, client domain.Client) error
}

// RecommendationClient wraps the AI room-recommendation endpoint.
type RecommendationClient interface {
	Recommend(ctx context.Context, token string, q RecommendationQuery) ([]domain.Room, error)
}

// CheckoutSession is the post-payment confirmation record for a completed
// external checkout.
type CheckoutSession struct {
	RoomNr      string
	StartDate   string
	EndDate     string
	AmountTotal int64 // smallest currency unit
}

// PaymentClient wraps the payment-provider session lookup used by the
// post-checkout success route.
type PaymentClient interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}

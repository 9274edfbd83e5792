package ports

import (
	"context"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
)

// AvailabilityService answers room searches and AI recommendations,
// validating the date range before anything goes upstream.
type AvailabilityService interface {
	Search(ctx context.Context, token string, q AvailabilityQuery) ([]domain.Room, error)
	Recommend(ctx context.Context, token string, q RecommendationQuery) ([]domain.Room, error)
}

// BookingService drives the booking lifecycle against the upstream API.
type BookingService interface {
	// Book validates the stay dates and returns the external checkout URL
	// the browser must be redirected to.
	Book(ctx context.Context, token string, in CreateBookingInput) (string, error)
	List(ctx context.Context, token string) ([]domain.Booking, error)
	ListAll(ctx context.Context, token string) ([]domain.Booking, error)
	Cancel(ctx context.Context, token, startDate, roomNr string) error
	Confirm(ctx context.Context, checkoutSessionID string) (CheckoutSession, error)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// BookingService fronts the upstream booking endpoints. The gateway never
// stores bookings itself; listings are re-fetched from upstream after
// every mutation.
type BookingService struct {
	bookings ports.BookingClient
	payments ports.PaymentClient
	now      func() time.Time
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingClient, payments ports.PaymentClient, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, payments: payments, now: time.Now, log: log}
}

// Book validates the stay dates and starts a booking upstream. The
// returned URL is the external payment checkout the browser must be
// redirected to; the booking is only final once payment completes there.
func (s *BookingService) Book(ctx context.Context, token string, in ports.CreateBookingInput) (string, error) {
	if _, err := domain.ParseDateRange(in.StartDate, in.EndDate, s.now()); err != nil {
		return "", err
	}

	link, err := s.bookings.Create(ctx, token, in)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("room_nr", in.RoomNr).Str("start", in.StartDate).Msg("booking checkout created")
	return link, nil
}

// List returns the caller's bookings.
func (s *BookingService) List(ctx context.Context, token string) ([]domain.Booking, error) {
	return s.bookings.List(ctx, token)
}

// ListAll returns every booking in the system (admin view).
func (s *BookingService) ListAll(ctx context.Context, token string) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx, token)
}

// Cancel deletes the booking identified by its composite key.
func (s *BookingService) Cancel(ctx context.Context, token, startDate, roomNr string) error {
	if err := s.bookings.Cancel(ctx, token, startDate, roomNr); err != nil {
		return err
	}
	s.log.Info().Str("room_nr", roomNr).Str("start", startDate).Msg("booking cancelled")
	return nil
}

// Confirm looks up a completed checkout session so the success page can
// show what was paid for.
func (s *BookingService) Confirm(ctx context.Context, checkoutSessionID string) (ports.CheckoutSession, error) {
	return s.payments.GetCheckoutSession(ctx, checkoutSessionID)
}

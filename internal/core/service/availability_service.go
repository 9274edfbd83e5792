package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// AvailabilityService fronts the upstream room search and AI
// recommendation endpoints. Every query passes date-range validation
// before a single byte is sent upstream.
type AvailabilityService struct {
	rooms ports.RoomCatalog
	recs  ports.RecommendationClient
	now   func() time.Time
	log   zerolog.Logger
}

func NewAvailabilityService(rooms ports.RoomCatalog, recs ports.RecommendationClient, log zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{rooms: rooms, recs: recs, now: time.Now, log: log}
}

// Search returns rooms free over the query range. Token may be empty —
// guests can search without a session.
func (s *AvailabilityService) Search(ctx context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
	if _, err := domain.ParseDateRange(q.StartDate, q.EndDate, s.now()); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.Available(ctx, token, q)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("rooms", len(rooms)).Str("start", q.StartDate).Str("end", q.EndDate).Msg("availability search")
	return rooms, nil
}

// Recommend returns AI-selected rooms for the range and the guest's
// free-text preferences.
func (s *AvailabilityService) Recommend(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error) {
	if _, err := domain.ParseDateRange(q.StartDate, q.EndDate, s.now()); err != nil {
		return nil, err
	}
	return s.recs.Recommend(ctx, token, q)
}

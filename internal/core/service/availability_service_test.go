package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

type stubRoomCatalog struct {
	available []domain.Room
	err       error
	lastToken string
	lastQuery ports.AvailabilityQuery
	calls     int
}

func (c *stubRoomCatalog) Available(_ context.Context, token string, q ports.AvailabilityQuery) ([]domain.Room, error) {
	c.calls++
	c.lastToken = token
	c.lastQuery = q
	return c.available, c.err
}

func (c *stubRoomCatalog) List(context.Context, string) ([]domain.Room, error) { return nil, nil }
func (c *stubRoomCatalog) Create(context.Context, string, domain.Room) error   { return nil }
func (c *stubRoomCatalog) Update(context.Context, string, string, domain.Room) error {
	return nil
}
func (c *stubRoomCatalog) Delete(context.Context, string, string) error { return nil }

type stubRecommender struct {
	rooms []domain.Room
	err   error
	calls int
}

func (r *stubRecommender) Recommend(_ context.Context, _ string, _ ports.RecommendationQuery) ([]domain.Room, error) {
	r.calls++
	return r.rooms, r.err
}

func fixedNow(svc *AvailabilityService, t time.Time) *AvailabilityService {
	svc.now = func() time.Time { return t }
	return svc
}

func TestAvailabilityService_Search(t *testing.T) {
	catalog := &stubRoomCatalog{available: []domain.Room{{RoomNr: "101"}}}
	svc := fixedNow(NewAvailabilityService(catalog, &stubRecommender{}, zerolog.Nop()),
		time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local))

	rooms, err := svc.Search(context.Background(), "tok", ports.AvailabilityQuery{
		StartDate: "2025-02-01", EndDate: "2025-02-05", MinOccupancy: 2,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNr != "101" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
	if catalog.lastToken != "tok" {
		t.Fatalf("token not forwarded")
	}
}

func TestAvailabilityService_Search_InvalidDatesSkipUpstream(t *testing.T) {
	catalog := &stubRoomCatalog{}
	svc := fixedNow(NewAvailabilityService(catalog, &stubRecommender{}, zerolog.Nop()),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))

	cases := []struct {
		start, end string
		want       error
	}{
		{"", "2025-02-05", domain.ErrMissingDate},
		{"2024-12-01", "2025-02-05", domain.ErrPastDate},
		{"2025-02-05", "2025-02-05", domain.ErrInvertedRange},
		{"bogus", "2025-02-05", domain.ErrInvalidDate},
	}
	for _, tc := range cases {
		_, err := svc.Search(context.Background(), "", ports.AvailabilityQuery{StartDate: tc.start, EndDate: tc.end})
		if err != tc.want {
			t.Fatalf("(%q, %q): expected %v, got %v", tc.start, tc.end, tc.want, err)
		}
	}
	if catalog.calls != 0 {
		t.Fatalf("expected no upstream calls for invalid dates, got %d", catalog.calls)
	}
}

func TestAvailabilityService_Search_GuestWithoutToken(t *testing.T) {
	catalog := &stubRoomCatalog{}
	svc := fixedNow(NewAvailabilityService(catalog, &stubRecommender{}, zerolog.Nop()),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))

	if _, err := svc.Search(context.Background(), "", ports.AvailabilityQuery{
		StartDate: "2025-02-01", EndDate: "2025-02-05",
	}); err != nil {
		t.Fatalf("guest search failed: %v", err)
	}
	if catalog.lastToken != "" {
		t.Fatalf("expected empty token for guest search")
	}
}

func TestAvailabilityService_Recommend(t *testing.T) {
	recs := &stubRecommender{rooms: []domain.Room{{RoomNr: "301"}}}
	svc := fixedNow(NewAvailabilityService(&stubRoomCatalog{}, recs, zerolog.Nop()),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))

	rooms, err := svc.Recommend(context.Background(), "tok", ports.RecommendationQuery{
		AvailabilityQuery: ports.AvailabilityQuery{StartDate: "2025-02-01", EndDate: "2025-02-03"},
		Preferences:       "sea view, quiet floor",
	})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}

	// Date validation guards recommendations as well.
	if _, err := svc.Recommend(context.Background(), "tok", ports.RecommendationQuery{
		AvailabilityQuery: ports.AvailabilityQuery{StartDate: "2025-02-03", EndDate: "2025-02-01"},
	}); err != domain.ErrInvertedRange {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}
	if recs.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", recs.calls)
	}
}

func TestAvailabilityService_Search_UpstreamError(t *testing.T) {
	upstreamErr := errors.New("upstream unavailable")
	catalog := &stubRoomCatalog{err: upstreamErr}
	svc := fixedNow(NewAvailabilityService(catalog, &stubRecommender{}, zerolog.Nop()),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local))

	if _, err := svc.Search(context.Background(), "", ports.AvailabilityQuery{
		StartDate: "2025-02-01", EndDate: "2025-02-05",
	}); !errors.Is(err, upstreamErr) {
		t.Fatalf("expected upstream error passthrough, got %v", err)
	}
}

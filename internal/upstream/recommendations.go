package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// RecommendationsClient wraps the AI room-recommendation endpoint.
type RecommendationsClient struct {
	c *Client
}

func NewRecommendationsClient(c *Client) *RecommendationsClient {
	return &RecommendationsClient{c: c}
}

func (r *RecommendationsClient) Recommend(ctx context.Context, token string, q ports.RecommendationQuery) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("startDate", q.StartDate)
	query.Set("endDate", q.EndDate)
	query.Set("minOccupancy", strconv.Itoa(q.MinOccupancy))
	query.Set("preferences", q.Preferences)

	var rooms []domain.Room
	err := r.c.do(ctx, call{
		endpoint: "recommendations",
		method:   http.MethodGet,
		path:     "/api/recommendations",
		query:    query,
		token:    token,
	}, &rooms)
	return rooms, err
}

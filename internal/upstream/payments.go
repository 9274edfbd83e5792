package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// PaymentsClient wraps the payment-provider session lookup used by the
// post-checkout success route.
type PaymentsClient struct {
	c *Client
}

func NewPaymentsClient(c *Client) *PaymentsClient {
	return &PaymentsClient{c: c}
}

type checkoutSessionResponse struct {
	Metadata struct {
		RoomNr    string `json:"roomNr"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"metadata"`
	AmountTotal int64 `json:"amount_total"`
}

func (p *PaymentsClient) GetCheckoutSession(ctx context.Context, sessionID string) (ports.CheckoutSession, error) {
	query := url.Values{}
	query.Set("session_id", sessionID)

	var resp checkoutSessionResponse
	err := p.c.do(ctx, call{
		endpoint: "checkout_session",
		method:   http.MethodGet,
		path:     "/api/stripe/get-session",
		query:    query,
	}, &resp)
	if err != nil {
		return ports.CheckoutSession{}, err
	}
	return ports.CheckoutSession{
		RoomNr:      resp.Metadata.RoomNr,
		StartDate:   resp.Metadata.StartDate,
		EndDate:     resp.Metadata.EndDate,
		AmountTotal: resp.AmountTotal,
	}, nil
}

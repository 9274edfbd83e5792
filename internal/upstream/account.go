package upstream

import (
	"context"
	"net/http"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
)

// AccountClient wraps the upstream self-service account endpoints.
type AccountClient struct {
	c *Client
}

func NewAccountClient(c *Client) *AccountClient {
	return &AccountClient{c: c}
}

func (a *AccountClient) Get(ctx context.Context, token string) (domain.Client, error) {
	var client domain.Client
	err := a.c.do(ctx, call{
		endpoint: "account_get",
		method:   http.MethodGet,
		path:     "/api/account",
		token:    token,
	}, &client)
	return client, err
}

func (a *AccountClient) Update(ctx context.Context, token string, client domain.Client) error {
	return a.c.do(ctx, call{
		endpoint: "account_update",
		method:   http.MethodPut,
		path:     "/api/account",
		token:    token,
		body:     client,
	}, nil)
}

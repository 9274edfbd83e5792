package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
)

// ClientsClient wraps the upstream client-management endpoints (admin).
type ClientsClient struct {
	c *Client
}

func NewClientsClient(c *Client) *ClientsClient {
	return &ClientsClient{c: c}
}

// createClientRequest embeds the client record plus the initial password
// required when an admin creates an account directly.
type createClientRequest struct {
	domain.Client
	Password string `json:"password,omitempty"`
}

func (cc *ClientsClient) List(ctx context.Context, token string) ([]domain.Client, error) {
	var clients []domain.Client
	err := cc.c.do(ctx, call{
		endpoint: "clients_list",
		method:   http.MethodGet,
		path:     "/api/clients",
		token:    token,
	}, &clients)
	return clients, err
}

func (cc *ClientsClient) Create(ctx context.Context, token string, client domain.Client, password string) error {
	return cc.c.do(ctx, call{
		endpoint: "clients_create",
		method:   http.MethodPost,
		path:     "/api/clients",
		token:    token,
		body:     createClientRequest{Client: client, Password: password},
	}, nil)
}

func (cc *ClientsClient) Update(ctx context.Context, token, email string, client domain.Client) error {
	return cc.c.do(ctx, call{
		endpoint: "clients_update",
		method:   http.MethodPut,
		path:     "/api/clients/" + url.PathEscape(email),
		token:    token,
		body:     client,
	}, nil)
}

func (cc *ClientsClient) Delete(ctx context.Context, token, email string) error {
	return cc.c.do(ctx, call{
		endpoint: "clients_delete",
		method:   http.MethodDelete,
		path:     "/api/clients/" + url.PathEscape(email),
		token:    token,
	}, nil)
}

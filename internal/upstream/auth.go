package upstream

import (
	"context"
	"net/http"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

// AuthClient wraps the upstream authentication endpoints.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type validateTokenResponse struct {
	Role string `json:"role"`
}

// Login exchanges credentials for a bearer token and role.
func (a *AuthClient) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	var resp loginResponse
	err := a.c.do(ctx, call{
		endpoint: "auth_login",
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     loginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return ports.LoginResult{}, err
	}
	return ports.LoginResult{Token: resp.AccessToken, Role: resp.Role}, nil
}

// Register creates a new guest account.
func (a *AuthClient) Register(ctx context.Context, in ports.RegisterInput) error {
	return a.c.do(ctx, call{
		endpoint: "auth_register",
		method:   http.MethodPost,
		path:     "/api/auth/client/register",
		body:     registerRequest{Name: in.Name, Email: in.Email, Password: in.Password},
	}, nil)
}

// Logout tells the upstream to invalidate the token.
func (a *AuthClient) Logout(ctx context.Context, token string) error {
	return a.c.do(ctx, call{
		endpoint: "auth_logout",
		method:   http.MethodPost,
		path:     "/api/auth/logout",
		token:    token,
	}, nil)
}

// ValidateToken confirms the token upstream and returns the role the
// response reports, or "" when it omits one. The caller bounds the
// deadline through ctx.
func (a *AuthClient) ValidateToken(ctx context.Context, token string) (string, error) {
	var resp validateTokenResponse
	err := a.c.do(ctx, call{
		endpoint: "auth_validate",
		method:   http.MethodPost,
		path:     "/api/auth/validate-token",
		token:    token,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Role, nil
}

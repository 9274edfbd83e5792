package domain

import "errors"

const (
	RoleAdmin  = "ROLE_ADMIN"
	RoleClient = "ROLE_CLIENT"
)

var ErrUnauthenticated = errors.New("not authenticated")
var ErrTokenExpired = errors.New("session token expired")
var ErrSessionNotFound = errors.New("session not found")
var ErrForbidden = errors.New("access forbidden")

// Session is the gateway-held record of a browser's authentication state.
// It owns the upstream bearer token on behalf of the browser; the token
// never reaches the client side.
type Session struct {
	ID            string `json:"id"`
	Token         string `json:"token"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// IsAdmin reports whether the session unlocks the management screens.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}

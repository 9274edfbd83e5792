package ports

import (
	"context"

	"github.com/grandhorizon/booking-gateway/internal/core/domain"
)

// SessionStore persists the durable part of a session (token + role) under
// an opaque session ID. Records expire with the store's TTL and are removed
// eagerly on logout.
type SessionStore interface {
	Save(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService is the single authority over authentication state. All
// failures collapse to an unauthenticated session; callers never observe a
// partial state.
type SessionService interface {
	// Login stores an already-issued upstream token and its role, returning
	// an authenticated session. It makes no upstream call.
	Login(ctx context.Context, token, role string) (domain.Session, error)

	// Logout best-effort notifies the upstream API and unconditionally
	// discards the stored session. Idempotent; never fails.
	Logout(ctx context.Context, sessionID string)

	// Validate re-establishes authentication for a stored session: a missing
	// record or expired token invalidates locally, anything else is confirmed
	// against the upstream validation endpoint under a bounded timeout.
	Validate(ctx context.Context, sessionID string) (domain.Session, error)

	// Current resolves a session for request handling: stored record plus a
	// local expiry check, no upstream round-trip.
	Current(ctx context.Context, sessionID string) (domain.Session, error)
}

// LogoutNotifier delivers fire-and-forget logout notifications to the
// upstream API. Delivery failures are logged, never surfaced.
type LogoutNotifier interface {
	Notify(token string)
}

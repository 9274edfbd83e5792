package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/api/metrics"
	"github.com/grandhorizon/booking-gateway/internal/core/domain"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

const defaultValidateTimeout = 10 * time.Second

// SessionService owns the token/role lifecycle. It is the only component
// that transitions a session between authenticated and unauthenticated;
// every failure path collapses to unauthenticated.
type SessionService struct {
	store           ports.SessionStore
	auth            ports.AuthClient
	notifier        ports.LogoutNotifier
	validateTimeout time.Duration
	now             func() time.Time
	log             zerolog.Logger
}

func NewSessionService(
	store ports.SessionStore,
	auth ports.AuthClient,
	notifier ports.LogoutNotifier,
	validateTimeout time.Duration,
	log zerolog.Logger,
) *SessionService {
	if validateTimeout <= 0 {
		validateTimeout = defaultValidateTimeout
	}
	return &SessionService{
		store:           store,
		auth:            auth,
		notifier:        notifier,
		validateTimeout: validateTimeout,
		now:             time.Now,
		log:             log,
	}
}

// Login records an upstream-issued token and role under a fresh session ID.
// The token was already obtained from the upstream login endpoint, so no
// network call happens here.
func (s *SessionService) Login(ctx context.Context, token, role string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrUnauthenticated
	}

	sess := domain.Session{
		ID:            newSessionID(),
		Token:         token,
		Role:          role,
		Authenticated: true,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("session_id", sess.ID).Str("role", role).Msg("session established")
	return sess, nil
}

// Logout discards the stored session. The upstream API is notified so it
// can invalidate the token, but that notification is fire-and-forget: a
// delivery failure is logged and never blocks the local teardown. Safe to
// call for sessions that no longer exist.
func (s *SessionService) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}

	if sess, err := s.store.Get(ctx, sessionID); err == nil && sess.Token != "" {
		s.notifier.Notify(sess.Token)
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("session delete failed")
	}
}

// Validate re-establishes authentication for a stored session.
//
// A missing record or an expired token invalidates the session locally,
// without an upstream call. Otherwise the token is confirmed against the
// upstream validation endpoint under a bounded timeout; the upstream's
// role wins when it reports one, the stored role otherwise. Any upstream
// rejection, timeout, or transport failure tears the session down.
func (s *SessionService) Validate(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
		s.Logout(ctx, sessionID)
		return domain.Session{}, domain.ErrUnauthenticated
	}

	if tokenExpired(sess.Token, s.now()) {
		s.log.Debug().Str("session_id", sessionID).Msg("stored token expired")
		metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
		s.Logout(ctx, sessionID)
		return domain.Session{}, domain.ErrTokenExpired
	}

	vctx, cancel := context.WithTimeout(ctx, s.validateTimeout)
	defer cancel()

	role, err := s.auth.ValidateToken(vctx, sess.Token)
	if err != nil {
		s.log.Info().Err(err).Str("session_id", sessionID).Msg("token validation failed")
		metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
		s.Logout(ctx, sessionID)
		return domain.Session{}, domain.ErrUnauthenticated
	}
	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

	if role == "" {
		role = sess.Role
	}
	if role != sess.Role {
		sess.Role = role
		if err := s.store.Save(ctx, sess); err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist adopted role")
		}
	}

	sess.Authenticated = true
	return sess, nil
}

// Current resolves a session for request handling without contacting the
// upstream: the stored record plus a local expiry check. The upstream
// enforces the token on every forwarded call anyway; the full Validate
// round-trip is reserved for session restore.
func (s *SessionService) Current(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	if tokenExpired(sess.Token, s.now()) {
		s.Logout(ctx, sessionID)
		return domain.Session{}, domain.ErrTokenExpired
	}
	sess.Authenticated = true
	return sess, nil
}

// tokenExpired inspects the token's embedded exp claim without verifying
// the signature — the signature belongs to the upstream issuer, the
// gateway only reads the expiry. An undecodable token counts as expired;
// a token without an exp claim does not.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Before(now)
}

// newSessionID returns a 128-bit random identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}

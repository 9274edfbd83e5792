// Package notify delivers fire-and-forget notifications to the upstream
// API from a background worker, so callers never wait on them.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/api/metrics"
	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

const (
	channelBuffer  = 64
	deliverTimeout = 5 * time.Second
)

// LogoutNotifier asks the upstream API to invalidate tokens after a local
// logout. Delivery is best-effort: failures are counted and logged, never
// reported back, and a full queue drops the notification rather than block
// the logout path.
type LogoutNotifier struct {
	tokens chan string
	auth   ports.AuthClient
	log    zerolog.Logger
}

// NewLogoutNotifier creates a LogoutNotifier backed by the given auth client.
func NewLogoutNotifier(auth ports.AuthClient, log zerolog.Logger) *LogoutNotifier {
	return &LogoutNotifier{
		tokens: make(chan string, channelBuffer),
		auth:   auth,
		log:    log,
	}
}

// Start launches the delivery worker. The worker stops when ctx is
// cancelled; queued notifications are abandoned at that point.
func (n *LogoutNotifier) Start(ctx context.Context) {
	go n.run(ctx)
}

// Notify enqueues a token for upstream invalidation. Never blocks.
func (n *LogoutNotifier) Notify(token string) {
	if token == "" {
		return
	}
	select {
	case n.tokens <- token:
	default:
		metrics.LogoutNotifyFailuresTotal.Inc()
		n.log.Warn().Msg("logout notification queue full, dropping")
	}
}

func (n *LogoutNotifier) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case token, ok := <-n.tokens:
			if !ok {
				return
			}
			n.deliver(ctx, token)
		}
	}
}

func (n *LogoutNotifier) deliver(ctx context.Context, token string) {
	dctx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	if err := n.auth.Logout(dctx, token); err != nil {
		metrics.LogoutNotifyFailuresTotal.Inc()
		n.log.Warn().Err(err).Msg("upstream logout notification failed")
	}
}

package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandhorizon/booking-gateway/internal/core/ports"
)

type stubAuthClient struct {
	mu        sync.Mutex
	logoutErr error
	tokens    []string
}

func (a *stubAuthClient) Login(context.Context, string, string) (ports.LoginResult, error) {
	return ports.LoginResult{}, nil
}

func (a *stubAuthClient) Register(context.Context, ports.RegisterInput) error { return nil }

func (a *stubAuthClient) ValidateToken(context.Context, string) (string, error) { return "", nil }

func (a *stubAuthClient) Logout(_ context.Context, token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens = append(a.tokens, token)
	return a.logoutErr
}

func (a *stubAuthClient) delivered() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.tokens...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestLogoutNotifier_Delivers(t *testing.T) {
	auth := &stubAuthClient{}
	n := NewLogoutNotifier(auth, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	n.Notify("tok-1")
	n.Notify("tok-2")

	waitFor(t, func() bool { return len(auth.delivered()) == 2 })
	got := auth.delivered()
	if got[0] != "tok-1" || got[1] != "tok-2" {
		t.Fatalf("unexpected deliveries: %v", got)
	}
}

func TestLogoutNotifier_FailureDoesNotPropagate(t *testing.T) {
	auth := &stubAuthClient{logoutErr: errors.New("upstream down")}
	n := NewLogoutNotifier(auth, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	// Notify never blocks and never surfaces the delivery error.
	n.Notify("tok-1")
	waitFor(t, func() bool { return len(auth.delivered()) == 1 })
}

func TestLogoutNotifier_EmptyTokenIgnored(t *testing.T) {
	auth := &stubAuthClient{}
	n := NewLogoutNotifier(auth, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Start(ctx)

	n.Notify("")
	time.Sleep(20 * time.Millisecond)
	if len(auth.delivered()) != 0 {
		t.Fatalf("expected no deliveries for empty token")
	}
}

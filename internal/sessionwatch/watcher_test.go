package sessionwatch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leads-admin-service/internal/auth"
	"leads-admin-service/internal/logger"
	"leads-admin-service/internal/sessionwatch"
)

// scriptedFetcher отдаёт ответы по очереди; последний повторяется.
type scriptedFetcher struct {
	mu      sync.Mutex
	replies []reply
	calls   int
}

type reply struct {
	version int
	err     error
}

func (f *scriptedFetcher) FetchSession(ctx context.Context) (auth.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r := f.replies[min(f.calls, len(f.replies)-1)]
	f.calls++
	if r.err != nil {
		return auth.Principal{}, r.err
	}
	return auth.Principal{UserID: "admin", SessionVersion: r.version}, nil
}

func runWatcher(t *testing.T, f sessionwatch.SessionFetcher) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var reason string
	w := sessionwatch.New(f, time.Millisecond, func(r string) { reason = r }, logger.NewNop())
	err := w.Run(ctx)
	return reason, err
}

func TestWatcher_Run(t *testing.T) {
	tests := []struct {
		name       string
		replies    []reply
		wantReason string
	}{
		{
			name:       "version bump after password change",
			replies:    []reply{{version: 2}, {version: 2}, {version: 3}},
			wantReason: sessionwatch.ReasonVersionChanged,
		},
		{
			name:       "signed out",
			replies:    []reply{{version: 2}, {err: sessionwatch.ErrNoSession}},
			wantReason: sessionwatch.ReasonSignedOut,
		},
		{
			name:       "no session from the start",
			replies:    []reply{{err: sessionwatch.ErrNoSession}},
			wantReason: sessionwatch.ReasonSignedOut,
		},
		{
			name:       "transient errors are retried",
			replies:    []reply{{version: 1}, {err: errors.New("connection reset")}, {err: errors.New("timeout")}, {version: 2}},
			wantReason: sessionwatch.ReasonVersionChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, err := runWatcher(t, &scriptedFetcher{replies: tt.replies})
			require.NoError(t, err)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestWatcher_StableSessionRunsUntilCancelled(t *testing.T) {
	f := &scriptedFetcher{replies: []reply{{version: 5}}}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	expired := false
	w := sessionwatch.New(f, time.Millisecond, func(string) { expired = true }, logger.NewNop())

	err := w.Run(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, expired)
	f.mu.Lock()
	assert.Greater(t, f.calls, 1)
	f.mu.Unlock()
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/session", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"admin","role":"root","sessionVersion":1}`))
		case "Bearer broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	p, err := sessionwatch.NewHTTPFetcher(srv.URL+"/", "good", srv.Client()).FetchSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", p.UserID)
	assert.Equal(t, 1, p.SessionVersion)

	_, err = sessionwatch.NewHTTPFetcher(srv.URL, "revoked", srv.Client()).FetchSession(context.Background())
	assert.ErrorIs(t, err, sessionwatch.ErrNoSession)

	_, err = sessionwatch.NewHTTPFetcher(srv.URL, "broken", srv.Client()).FetchSession(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, sessionwatch.ErrNoSession)
}

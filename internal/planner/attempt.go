package planner

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type attemptKey struct{}

// WithAttemptID returns a context carrying the submission attempt token.
func WithAttemptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptKey{}, id)
}

// AttemptIDFromContext returns the attempt token stored by WithAttemptID.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(attemptKey{}).(string)
	return id, ok && id != ""
}

// AttemptTracker hands out one token per submission attempt. Only the
// current token may drive navigation; beginning a new attempt or cancelling
// supersedes the previous one and cancels its context.
type AttemptTracker struct {
	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
}

// NewAttemptTracker returns a tracker with no attempt in flight.
func NewAttemptTracker() *AttemptTracker {
	return &AttemptTracker{}
}

// Begin starts a new attempt derived from parent. The returned context carries
// the attempt ID and is cancelled when the attempt is superseded.
func (t *AttemptTracker) Begin(parent context.Context) (string, context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(WithAttemptID(parent, id))
	t.current = id
	t.cancel = cancel
	return id, ctx
}

// IsCurrent reports whether id is the attempt currently in flight.
func (t *AttemptTracker) IsCurrent(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return id != "" && id == t.current
}

// InFlight reports whether any attempt is outstanding.
func (t *AttemptTracker) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current != ""
}

// Finish completes attempt id. It returns false when id is stale, in which
// case the caller must drop the result.
func (t *AttemptTracker) Finish(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == "" || id != t.current {
		return false
	}
	t.release()
	return true
}

// Cancel abandons the attempt in flight, if any.
func (t *AttemptTracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.release()
}

func (t *AttemptTracker) release() {
	if t.cancel != nil {
		t.cancel()
	}
	t.current = ""
	t.cancel = nil
}

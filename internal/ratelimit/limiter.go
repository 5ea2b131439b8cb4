// Package ratelimit guards the public inquiry path. The default limiter
// counts recent inquiry documents in the store; when redis is configured the
// strict sliding-window limiter is used instead.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Limiter reports whether a client key may submit another inquiry.
// An error means the check itself could not be performed; callers must treat
// that as a denial (fail closed), not as an allowance.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RecentCounter is the slice of the inquiry repository the window limiter
// needs: how many inquiries a client key has submitted since a cutoff.
type RecentCounter interface {
	CountRecent(ctx context.Context, clientKey string, since time.Time) (int, error)
}

// WindowLimiter counts stored inquiries within a sliding window. The
// count-then-insert sequence is not atomic: two concurrent submissions from
// the same key can both pass before either is persisted. The limit is a soft
// one and the race is accepted.
type WindowLimiter struct {
	counter RecentCounter
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewWindowLimiter(counter RecentCounter, window time.Duration, max int) *WindowLimiter {
	return &WindowLimiter{
		counter: counter,
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

func (l *WindowLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	since := l.now().Add(-l.window)

	count, err := l.counter.CountRecent(ctx, clientKey, since)
	if err != nil {
		return false, fmt.Errorf("count recent inquiries: %w", err)
	}

	return count < l.max, nil
}

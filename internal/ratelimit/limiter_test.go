package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count     int
	err       error
	lastKey   string
	lastSince time.Time
}

func (f *fakeCounter) CountRecent(_ context.Context, clientKey string, since time.Time) (int, error) {
	f.lastKey = clientKey
	f.lastSince = since
	return f.count, f.err
}

func TestWindowLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows below the limit", func(t *testing.T) {
		counter := &fakeCounter{count: 2}
		l := NewWindowLimiter(counter, time.Hour, 3)

		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "203.0.113.7", counter.lastKey)
	})

	t.Run("denies at the limit", func(t *testing.T) {
		l := NewWindowLimiter(&fakeCounter{count: 3}, time.Hour, 3)

		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("denies above the limit", func(t *testing.T) {
		l := NewWindowLimiter(&fakeCounter{count: 7}, time.Hour, 3)

		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("fails closed when the count query fails", func(t *testing.T) {
		l := NewWindowLimiter(&fakeCounter{err: errors.New("store down")}, time.Hour, 3)

		ok, err := l.Allow(ctx, "203.0.113.7")
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("anchors the window to now", func(t *testing.T) {
		counter := &fakeCounter{}
		l := NewWindowLimiter(counter, time.Hour, 3)
		fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return fixed }

		_, err := l.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, fixed.Add(-time.Hour), counter.lastSince)
	})
}

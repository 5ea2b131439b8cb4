// Package cache is a stale-while-revalidate cache fronting the read service.
// It bounds read volume against the document store: one blocking fetch on
// first access, a scheduled background refresh per key, and last-good values
// served (marked stale) while the store is unreachable.
package cache

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Logical resource keys.
const (
	KeyProjects = "projects"
	KeyProfile  = "profile"
)

// retryEvery spaces out re-fetches of a key whose last fetch failed.
const retryEvery = 10 * time.Second

// FetchFunc loads the current value for a key from the read service.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// keyState is the per-key fetcher plus its failure backoff. Each key paces
// its own retries; keys never contend for a shared token.
type keyState struct {
	fetch FetchFunc
	retry *rate.Limiter
}

// Cache coalesces concurrent fetches per key and refreshes each key on a
// fixed schedule. Entries are replaced, never mutated, so readers hold a
// consistent snapshot without locking around the fetch itself.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	keys    map[string]*keyState

	group        singleflight.Group
	refreshEvery time.Duration
	dedupeWindow time.Duration
	cron         *cron.Cron
}

func New(refreshEvery, dedupeWindow time.Duration) *Cache {
	return &Cache{
		entries:      make(map[string]*entry),
		keys:         make(map[string]*keyState),
		refreshEvery: refreshEvery,
		dedupeWindow: dedupeWindow,
		cron:         cron.New(),
	}
}

// Register wires a key to its fetcher and schedules its background refresh.
func (c *Cache) Register(key string, fetch FetchFunc) error {
	c.mu.Lock()
	c.keys[key] = &keyState{
		fetch: fetch,
		retry: rate.NewLimiter(rate.Every(retryEvery), 1),
	}
	c.mu.Unlock()

	_, err := c.cron.AddFunc(fmt.Sprintf("@every %s", c.refreshEvery), func() {
		c.Refresh(context.Background(), key)
	})
	if err != nil {
		return fmt.Errorf("schedule refresh for %q: %w", key, err)
	}
	return nil
}

// Start begins the background refresh schedule.
func (c *Cache) Start() {
	c.cron.Start()
}

func (c *Cache) Stop() {
	c.cron.Stop()
}

// Get returns the cached value for key and whether it is stale. The first
// access blocks on a fetch; concurrent first accesses share a single
// underlying call and receive the same result. Later accesses never trigger
// a fetch themselves — freshness is the refresh schedule's job.
func (c *Cache) Get(ctx context.Context, key string) (any, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return e.value, e.stale, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, key)
	})
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

// Refresh re-fetches a key in the background schedule or after a reconnect.
// A key fetched within the dedupe window is left alone. Only a key whose
// last fetch failed is paced through its backoff; a healthy scheduled or
// reconnect refresh never waits on it.
func (c *Cache) Refresh(ctx context.Context, key string) {
	c.mu.RLock()
	st, registered := c.keys[key]
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !registered {
		return
	}
	if ok && !e.stale && time.Since(e.fetchedAt) < c.dedupeWindow {
		return
	}
	if ok && e.stale && !st.retry.Allow() {
		return
	}

	if _, err, _ := c.group.Do(key, func() (any, error) { return c.fetch(ctx, key) }); err != nil {
		log.Printf("[cache] refresh %q failed: %v", key, err)
	}
}

// NotifyReconnected refreshes every key after a network outage ends. There
// is deliberately no refresh-on-focus hook; the schedule bounds read volume.
func (c *Cache) NotifyReconnected(ctx context.Context) {
	c.mu.RLock()
	keys := make([]string, 0, len(c.keys))
	for key := range c.keys {
		keys = append(keys, key)
	}
	c.mu.RUnlock()

	for _, key := range keys {
		c.Refresh(ctx, key)
	}
}

func (c *Cache) fetch(ctx context.Context, key string) (any, error) {
	c.mu.RLock()
	st, ok := c.keys[key]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("cache: no fetcher registered for %q", key)
	}

	v, err := st.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if e, ok := c.entries[key]; ok {
			// Keep serving the last good value, flagged stale.
			c.entries[key] = &entry{value: e.value, fetchedAt: e.fetchedAt, stale: true}
			log.Printf("[cache] serving stale %q: %v", key, err)
			return e.value, nil
		}
		return nil, err
	}

	c.entries[key] = &entry{value: v, fetchedAt: time.Now()}
	return v, nil
}

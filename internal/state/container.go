// Package state holds the admin panel's client-side caches: one container
// per collection, reconciled against server responses after every call.
package state

import (
	"context"
	"sync"
)

// Container caches one collection. It tracks a loading flag and the last
// error message, and reconciles mutations in place: append on create,
// replace on update, remove on delete. A fetch failure keeps the previous
// cache (stale-but-available).
//
// Every fetch captures a generation number; a response whose generation is
// no longer current is discarded, so a late response can never clobber
// newer state. Mutations bump the generation for the same reason.
type Container[T any] struct {
	mu       sync.Mutex
	id       func(T) int64
	items    []T
	inflight int
	lastErr  string
	gen      uint64
	stale    bool
	fetched  bool
}

// NewContainer constructs a container; id extracts a record's id.
func NewContainer[T any](id func(T) int64) *Container[T] {
	return &Container[T]{id: id}
}

// Fetch loads the collection and replaces the cache on success. On failure
// the previous cache stays and the error is recorded.
func (c *Container[T]) Fetch(ctx context.Context, load func(ctx context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.inflight++
	c.mu.Unlock()

	items, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if gen != c.gen {
		// Superseded by a newer fetch or mutation; drop the result.
		return nil
	}
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.items = items
	c.lastErr = ""
	c.stale = false
	c.fetched = true
	return nil
}

// Create runs the service call and appends the returned record.
func (c *Container[T]) Create(ctx context.Context, call func(ctx context.Context) (T, error)) (T, error) {
	created, err := call(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		var zero T
		return zero, err
	}
	c.gen++
	c.items = append(c.items, created)
	c.lastErr = ""
	return created, nil
}

// Update runs the service call and replaces the matching cached record.
func (c *Container[T]) Update(ctx context.Context, id int64, call func(ctx context.Context) (T, error)) (T, error) {
	updated, err := call(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		var zero T
		return zero, err
	}
	c.gen++
	found := false
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = updated
			found = true
			break
		}
	}
	if !found {
		// Cache drifted from the server; force a re-fetch.
		c.stale = true
	}
	c.lastErr = ""
	return updated, nil
}

// Delete runs the service call and removes the matching cached record.
func (c *Container[T]) Delete(ctx context.Context, id int64, call func(ctx context.Context) error) error {
	err := call(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.gen++
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.lastErr = ""
	return nil
}

// Items returns a copy of the cached collection.
func (c *Container[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a fetch is in flight.
func (c *Container[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Err returns the last recorded error message, "" when the last call
// succeeded.
func (c *Container[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Invalidate marks the cache stale so the next reader re-fetches.
func (c *Container[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stale = true
}

// Stale reports whether the cache needs a re-fetch: never fetched, marked
// invalid, or drifted from the server.
func (c *Container[T]) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale || !c.fetched
}

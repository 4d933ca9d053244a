package cache

import (
	"context"
	"fmt"
	"time"
)

// Wrap returns the cached value for key, or runs fn, stores its result for
// ttl and returns it. Concurrent misses of the same key share one call of
// fn. Errors are returned to every waiting caller and never cached.
//
// The shared call is not cancelled by any single caller: fn runs without the
// caller's cancellation, and each caller stops waiting when its own ctx is
// done.
func (c *TTL[K, V]) Wrap(ctx context.Context, key K, ttl time.Duration, fn func(context.Context) (V, error)) (V, error) {
	var zero V
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	callCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flightKey(key), func() (any, error) {
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		v, err := fn(callCtx)
		if err != nil {
			return v, err
		}
		c.SetWithTTL(key, v, ttl)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// flightKey renders key with its type and Go syntax, so string fields are
// quoted and distinct composite keys cannot print the same.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%T:%#v", key, key)
}

// Memoize turns fn into a cached function. keyFn maps an argument to its
// cache key.
func Memoize[A any, K comparable, V any](
	c *TTL[K, V],
	keyFn func(A) K,
	ttl time.Duration,
	fn func(context.Context, A) (V, error),
) func(context.Context, A) (V, error) {
	return func(ctx context.Context, arg A) (V, error) {
		return c.Wrap(ctx, keyFn(arg), ttl, func(ctx context.Context) (V, error) {
			return fn(ctx, arg)
		})
	}
}

// peek reads a live value without touching the hit/miss counters.
func (c *TTL[K, V]) peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[K, V])
	if !c.clock.Now().Before(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

package ratecounter

import (
	"container/list"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	DefaultWindow        = 60 * time.Second
	DefaultSweepInterval = 60 * time.Second

	// expired windows collected opportunistically per Increment
	sweepOnAccess = 2
)

var ErrInvalidWindow = errors.New("rate counter window must be positive")

type window struct {
	origin string
	count  int
	start  time.Time
}

// Counter counts requests per origin in fixed windows that open on the first
// request after the previous window ran out. It only reports counts; callers
// decide what a high count means.
//
// Windows are kept ordered by start time, so expired ones are always at the
// front and a sweep only touches what it removes.
type Counter struct {
	mu      sync.Mutex
	origins map[string]*list.Element
	byStart *list.List
	window  time.Duration
	clock   clock.Clock

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

type options struct {
	clock         clock.Clock
	sweepInterval time.Duration
}

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithSweepInterval sets how often expired windows are collected in the
// background. Zero disables the background sweep.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) {
		o.sweepInterval = d
	}
}

func New(windowSize time.Duration, opts ...Option) (*Counter, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidWindow, windowSize)
	}

	o := options{
		clock:         clock.New(),
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Counter{
		origins: make(map[string]*list.Element),
		byStart: list.New(),
		window:  windowSize,
		clock:   o.clock,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if o.sweepInterval > 0 {
		go c.sweepLoop(o.sweepInterval)
	} else {
		close(c.done)
	}
	return c, nil
}

// Increment records one request from origin and returns the count in its
// current window.
func (c *Counter) Increment(origin string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.sweepLocked(now, sweepOnAccess)

	if el, ok := c.origins[origin]; ok {
		w := el.Value.(*window)
		if !c.expired(w, now) {
			w.count++
			return w.count
		}
		w.count = 1
		w.start = now
		c.byStart.MoveToBack(el)
		return 1
	}

	c.origins[origin] = c.byStart.PushBack(&window{origin: origin, count: 1, start: now})
	return 1
}

// Count returns the count of origin's open window, or zero.
func (c *Counter) Count(origin string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.origins[origin]
	if !ok {
		return 0
	}
	w := el.Value.(*window)
	if c.expired(w, c.clock.Now()) {
		return 0
	}
	return w.count
}

// Above returns every origin whose open window count is strictly greater than
// threshold, the same comparison the high request rate warning uses.
func (c *Counter) Above(threshold int) map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	out := make(map[string]int)
	for el := c.byStart.Back(); el != nil; el = el.Prev() {
		w := el.Value.(*window)
		if c.expired(w, now) {
			break
		}
		if w.count > threshold {
			out[w.origin] = w.count
		}
	}
	return out
}

// Open is the number of origins whose window is still open.
func (c *Counter) Open() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	n := 0
	for el := c.byStart.Back(); el != nil; el = el.Prev() {
		if c.expired(el.Value.(*window), now) {
			break
		}
		n++
	}
	return n
}

// Len is the number of tracked origins, including expired windows not yet
// swept.
func (c *Counter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byStart.Len()
}

// Sweep removes every expired window and returns how many were removed.
func (c *Counter) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(c.clock.Now(), -1)
}

// Close stops the background sweep. Counting keeps working afterwards.
func (c *Counter) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

func (c *Counter) expired(w *window, now time.Time) bool {
	return now.Sub(w.start) > c.window
}

// sweepLocked removes up to limit expired windows from the front; a negative
// limit removes all of them.
func (c *Counter) sweepLocked(now time.Time, limit int) int {
	removed := 0
	for el := c.byStart.Front(); el != nil && removed != limit; el = c.byStart.Front() {
		w := el.Value.(*window)
		if !c.expired(w, now) {
			break
		}
		c.byStart.Remove(el)
		delete(c.origins, w.origin)
		removed++
	}
	return removed
}

func (c *Counter) sweepLoop(interval time.Duration) {
	defer close(c.done)
	ticker := c.clock.Ticker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

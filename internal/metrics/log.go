package metrics

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultCapacity      = 10_000
	DefaultSlowThreshold = time.Second
)

var ErrInvalidCapacity = errors.New("metrics log capacity must be positive")

// Log is a fixed-capacity FIFO history of records. Once full, every Append
// overwrites the oldest record, so the log always holds the most recent
// Capacity() requests.
type Log struct {
	mu     sync.RWMutex
	buf    []Record
	head   int // index of the oldest record
	size   int
	slowMs float64
	sink   Sink
}

type LogOption func(*Log)

// WithSlowThreshold sets the elapsed time above which Append emits a
// slow_request event. Zero disables the warning.
func WithSlowThreshold(d time.Duration) LogOption {
	return func(l *Log) {
		l.slowMs = float64(d.Microseconds()) / 1000.0
	}
}

func WithSink(s Sink) LogOption {
	return func(l *Log) {
		l.sink = s
	}
}

func NewLog(capacity int, opts ...LogOption) (*Log, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	l := &Log{
		buf:  make([]Record, capacity),
		sink: NopSink,
	}
	WithSlowThreshold(DefaultSlowThreshold)(l)
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Log) Append(r Record) {
	l.mu.Lock()
	if l.size < len(l.buf) {
		l.buf[(l.head+l.size)%len(l.buf)] = r
		l.size++
	} else {
		l.buf[l.head] = r
		l.head = (l.head + 1) % len(l.buf)
	}
	l.mu.Unlock()

	if l.slowMs > 0 && r.ElapsedMs > l.slowMs {
		SafeEmit(l.sink, Event{
			Time:    r.Timestamp,
			Kind:    KindSlowRequest,
			Level:   slog.LevelWarn,
			Message: "slow request",
			Attrs:   append(RecordAttrs(r), slog.Float64("threshold_ms", l.slowMs)),
		})
	}
}

// Snapshot returns a copy of the log, oldest first. Later appends do not
// affect the returned slice.
func (l *Log) Snapshot() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, l.size)
	n := copy(out, l.buf[l.head:min(l.head+l.size, len(l.buf))])
	copy(out[n:], l.buf[:l.size-n])
	return out
}

// Filter returns the records matching keep, in log order.
func (l *Log) Filter(keep func(Record) bool) []Record {
	out := []Record{}
	for _, r := range l.Snapshot() {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

func (l *Log) Capacity() int {
	return len(l.buf)
}

// SlowThresholdMs is the threshold Append warns above, in milliseconds.
func (l *Log) SlowThresholdMs() float64 {
	return l.slowMs
}

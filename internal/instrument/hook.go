package instrument

import (
	"cmp"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"mallapi/internal/metrics"
)

const (
	DefaultRateThreshold = 100
	unknownAddress       = "unknown"
)

type Recorder interface {
	Append(r metrics.Record)
}

type OriginCounter interface {
	Increment(origin string) int
}

// Request describes the inbound request being timed. Address keys the
// per-origin counter; UserAgent is stored on the record as its origin.
type Request struct {
	Route     string
	Method    string
	UserAgent string
	Address   string
}

// Handle carries the state captured by Start. It is finished at most once.
type Handle struct {
	id    string
	req   Request
	start time.Time
	mem   metrics.MemoryUsage
	ended atomic.Bool
}

func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Hook times request/response cycles and feeds the metrics log, the origin
// counter and the event sink. It never panics into the caller.
type Hook struct {
	recorder      Recorder
	counter       OriginCounter
	sink          metrics.Sink
	probe         metrics.MemoryProbe
	clock         clock.Clock
	nextID        func() string
	rateThreshold int
}

type Option func(*Hook)

func WithClock(c clock.Clock) Option {
	return func(h *Hook) {
		h.clock = c
	}
}

func WithProbe(p metrics.MemoryProbe) Option {
	return func(h *Hook) {
		h.probe = p
	}
}

func WithSink(s metrics.Sink) Option {
	return func(h *Hook) {
		h.sink = s
	}
}

// WithIDs sets the source of handle IDs.
func WithIDs(next func() string) Option {
	return func(h *Hook) {
		h.nextID = next
	}
}

// WithRateThreshold sets the per-window count above which End emits a
// high_request_rate warning.
func WithRateThreshold(n int) Option {
	return func(h *Hook) {
		h.rateThreshold = n
	}
}

func New(recorder Recorder, counter OriginCounter, opts ...Option) *Hook {
	h := &Hook{
		recorder:      recorder,
		counter:       counter,
		sink:          metrics.NopSink,
		probe:         metrics.NewRuntimeProbe(),
		clock:         clock.New(),
		nextID:        func() string { return "" },
		rateThreshold: DefaultRateThreshold,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start captures the start time and memory reading for one request.
func (h *Hook) Start(req Request) (handle *Handle) {
	handle = &Handle{req: req, start: h.clock.Now()}
	defer h.recoverTo("start", req)

	handle.id = h.nextID()
	handle.mem = h.probe.Usage()
	return handle
}

// End finishes handle with the response status, records it and returns the
// record. A nil or already finished handle is ignored and yields a zero
// record.
func (h *Hook) End(handle *Handle, statusCode int) (rec metrics.Record) {
	if handle == nil || !handle.ended.CompareAndSwap(false, true) {
		return metrics.Record{}
	}
	defer h.recoverTo("end", handle.req)

	now := h.clock.Now()
	rec = metrics.Record{
		Route:      handle.req.Route,
		Method:     handle.req.Method,
		ElapsedMs:  float64(now.Sub(handle.start).Microseconds()) / 1000.0,
		StatusCode: statusCode,
		Timestamp:  now,
		Memory:     h.probe.Usage().Sub(handle.mem),
		Origin:     handle.req.UserAgent,
	}
	h.recorder.Append(rec)

	addr := cmp.Or(handle.req.Address, unknownAddress)
	count := h.counter.Increment(addr)

	attrs := append(metrics.RecordAttrs(rec),
		slog.String("request_id", handle.id),
		slog.String("address", addr),
		slog.Int("window_count", count))
	metrics.SafeEmit(h.sink, metrics.Event{
		Time:    now,
		Kind:    metrics.KindRequest,
		Level:   slog.LevelInfo,
		Message: "request completed",
		Attrs:   attrs,
	})

	if h.rateThreshold > 0 && count > h.rateThreshold {
		metrics.SafeEmit(h.sink, metrics.Event{
			Time:    now,
			Kind:    metrics.KindHighRequestRate,
			Level:   slog.LevelWarn,
			Message: "high request rate",
			Attrs: []slog.Attr{
				slog.String("address", addr),
				slog.Int("count", count),
				slog.Int("threshold", h.rateThreshold),
				slog.String("route", rec.Route),
			},
		})
	}
	return rec
}

func (h *Hook) recoverTo(stage string, req Request) {
	if r := recover(); r != nil {
		metrics.SafeEmit(h.sink, metrics.Event{
			Time:    h.clock.Now(),
			Kind:    metrics.KindInstrumentationFailed,
			Level:   slog.LevelWarn,
			Message: "instrumentation failed",
			Attrs: []slog.Attr{
				slog.String("stage", stage),
				slog.String("route", req.Route),
				slog.String("method", req.Method),
				slog.String("panic", fmt.Sprint(r)),
			},
		})
	}
}

package metrics

import (
	"log/slog"
	"time"
)

const (
	KindRequest               = "request"
	KindSlowRequest           = "slow_request"
	KindHighRequestRate       = "high_request_rate"
	KindInstrumentationFailed = "instrumentation_error"
	KindRateLimited           = "rate_limited"
)

// Event is a structured observation handed to a Sink. The core builds events;
// the sink decides whether and how they are written.
type Event struct {
	Time    time.Time
	Kind    string
	Level   slog.Level
	Message string
	Attrs   []slog.Attr
}

type Sink interface {
	Emit(e Event)
}

type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// NopSink discards every event.
var NopSink Sink = SinkFunc(func(Event) {})

// SafeEmit hands e to s and swallows a panicking sink, so a broken log
// pipeline never interrupts the operation that produced the event.
func SafeEmit(s Sink, e Event) {
	if s == nil {
		return
	}
	defer func() { _ = recover() }()
	s.Emit(e)
}

// RecordAttrs flattens a record into log attributes.
func RecordAttrs(r Record) []slog.Attr {
	return []slog.Attr{
		slog.String("route", r.Route),
		slog.String("method", r.Method),
		slog.Float64("elapsed_ms", r.ElapsedMs),
		slog.Int("status_code", r.StatusCode),
		slog.String("origin", r.Origin),
		slog.Int64("heap_used_delta", r.Memory.HeapUsed),
		slog.Int64("resident_delta", r.Memory.Resident),
	}
}

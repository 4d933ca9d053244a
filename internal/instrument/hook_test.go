package instrument_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mallapi/internal/instrument"
	"mallapi/internal/metrics"
	"mallapi/internal/ratecounter"
)

type captureSink struct {
	mu     sync.Mutex
	events []metrics.Event
}

func (s *captureSink) Emit(e metrics.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *captureSink) byKind(kind string) []metrics.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []metrics.Event
	for _, e := range s.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	hook    *instrument.Hook
	log     *metrics.Log
	counter *ratecounter.Counter
	clock   *clock.Mock
	sink    *captureSink
}

func newFixture(t *testing.T, probe metrics.MemoryProbe, opts ...instrument.Option) fixture {
	t.Helper()
	return newFixtureWithCapacity(t, 100, probe, opts...)
}

func newFixtureWithCapacity(t *testing.T, capacity int, probe metrics.MemoryProbe, opts ...instrument.Option) fixture {
	t.Helper()
	mock := clock.NewMock()
	sink := &captureSink{}

	l, err := metrics.NewLog(capacity)
	require.NoError(t, err)
	counter, err := ratecounter.New(time.Minute,
		ratecounter.WithClock(mock),
		ratecounter.WithSweepInterval(0))
	require.NoError(t, err)
	t.Cleanup(counter.Close)

	seq := 0
	opts = append([]instrument.Option{
		instrument.WithClock(mock),
		instrument.WithProbe(probe),
		instrument.WithSink(sink),
		instrument.WithIDs(func() string { seq++; return "req-" + strconv.Itoa(seq) }),
	}, opts...)

	return fixture{
		hook:    instrument.New(l, counter, opts...),
		log:     l,
		counter: counter,
		clock:   mock,
		sink:    sink,
	}
}

func steppedProbe(readings ...metrics.MemoryUsage) metrics.MemoryProbe {
	var mu sync.Mutex
	i := 0
	return metrics.ProbeFunc(func() metrics.MemoryUsage {
		mu.Lock()
		defer mu.Unlock()
		r := readings[min(i, len(readings)-1)]
		i++
		return r
	})
}

func TestHook_RecordsRequest(t *testing.T) {
	f := newFixture(t, steppedProbe(
		metrics.MemoryUsage{Resident: 1000, HeapUsed: 500},
		metrics.MemoryUsage{Resident: 900, HeapUsed: 800},
	))

	h := f.hook.Start(instrument.Request{
		Route:     "/api/v1/shops/:slug",
		Method:    "GET",
		UserAgent: "curl/8.0",
		Address:   "10.0.0.1",
	})
	assert.Equal(t, "req-1", h.ID())

	f.clock.Add(250 * time.Millisecond)
	rec := f.hook.End(h, 200)

	assert.Equal(t, "/api/v1/shops/:slug", rec.Route)
	assert.Equal(t, "GET", rec.Method)
	assert.InDelta(t, 250.0, rec.ElapsedMs, 1e-9)
	assert.Equal(t, 200, rec.StatusCode)
	assert.Equal(t, "curl/8.0", rec.Origin)
	assert.Equal(t, int64(-100), rec.Memory.Resident)
	assert.Equal(t, int64(300), rec.Memory.HeapUsed)
	assert.Equal(t, f.clock.Now(), rec.Timestamp)

	assert.Equal(t, []metrics.Record{rec}, f.log.Snapshot())
	assert.Equal(t, 1, f.counter.Count("10.0.0.1"))

	events := f.sink.byKind(metrics.KindRequest)
	require.Len(t, events, 1)
	assert.Equal(t, "request completed", events[0].Message)
}

func TestHook_EndTwiceRecordsOnce(t *testing.T) {
	f := newFixture(t, metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }))

	h := f.hook.Start(instrument.Request{Route: "/x", Method: "GET", Address: "a"})
	f.hook.End(h, 200)
	rec := f.hook.End(h, 500)

	assert.Zero(t, rec)
	assert.Equal(t, 1, f.log.Len())
	assert.Equal(t, 1, f.counter.Count("a"))
}

func TestHook_NilHandle(t *testing.T) {
	f := newFixture(t, metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }))

	assert.NotPanics(t, func() {
		f.hook.End(nil, 200)
	})
	assert.Equal(t, 0, f.log.Len())
}

func TestHook_UnknownAddress(t *testing.T) {
	f := newFixture(t, metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }))

	f.hook.End(f.hook.Start(instrument.Request{Route: "/x", Method: "GET"}), 200)

	assert.Equal(t, 1, f.counter.Count("unknown"))
}

func TestHook_HighRequestRate(t *testing.T) {
	f := newFixture(t,
		metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }),
		instrument.WithRateThreshold(3))

	for range 5 {
		f.hook.End(f.hook.Start(instrument.Request{Route: "/x", Method: "GET", Address: "10.0.0.9"}), 200)
	}

	warnings := f.sink.byKind(metrics.KindHighRequestRate)
	require.Len(t, warnings, 2, "fourth and fifth requests exceed the threshold")
	assert.Equal(t, "high request rate", warnings[0].Message)
	assert.Equal(t, 5, f.log.Len(), "the counter never rejects")
}

func TestHook_PanickingProbeDoesNotEscape(t *testing.T) {
	f := newFixture(t, metrics.ProbeFunc(func() metrics.MemoryUsage { panic("probe down") }))

	var h *instrument.Handle
	assert.NotPanics(t, func() {
		h = f.hook.Start(instrument.Request{Route: "/x", Method: "GET"})
		f.hook.End(h, 200)
	})
	require.NotNil(t, h)

	failures := f.sink.byKind(metrics.KindInstrumentationFailed)
	assert.Len(t, failures, 2)
	assert.Equal(t, 0, f.log.Len())
}

func TestHook_PanickingSinkDoesNotEscape(t *testing.T) {
	f := newFixture(t,
		metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }),
		instrument.WithSink(metrics.SinkFunc(func(metrics.Event) { panic("sink down") })))

	assert.NotPanics(t, func() {
		f.hook.End(f.hook.Start(instrument.Request{Route: "/x", Method: "GET"}), 200)
	})
	assert.Equal(t, 1, f.log.Len())
}

func TestHook_Concurrent(t *testing.T) {
	const n = 200
	f := newFixtureWithCapacity(t, n, metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }),
		instrument.WithIDs(func() string { return "" }))

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.hook.End(f.hook.Start(instrument.Request{Route: "/x/" + strconv.Itoa(i), Method: "GET", Address: "shared"}), 200)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, f.log.Len())
	assert.Equal(t, n, f.counter.Count("shared"))

	seen := make(map[string]bool, n)
	for _, rec := range f.log.Snapshot() {
		assert.False(t, seen[rec.Route], "duplicate record for %s", rec.Route)
		seen[rec.Route] = true
	}
}

func TestHook_ConcurrentBeyondCapacity(t *testing.T) {
	const n = 200
	f := newFixture(t, metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} }),
		instrument.WithIDs(func() string { return "" }))

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.hook.End(f.hook.Start(instrument.Request{Route: "/x/" + strconv.Itoa(i), Method: "GET", Address: "shared"}), 200)
		}()
	}
	wg.Wait()

	assert.Equal(t, min(n, f.log.Capacity()), f.log.Len())
	assert.Equal(t, n, f.counter.Count("shared"))

	seen := make(map[string]bool)
	for _, rec := range f.log.Snapshot() {
		assert.False(t, seen[rec.Route], "duplicate record for %s", rec.Route)
		seen[rec.Route] = true
	}
}

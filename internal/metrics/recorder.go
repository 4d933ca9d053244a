package metrics

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"mallapi/internal/config"
)

// Recorder is the production Sink. Emit never blocks: events go into a
// bounded buffer and a single goroutine writes them to the logger in batches.
// When the buffer is full the event is dropped and counted.
type Recorder struct {
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	eventCh      chan Event
	dropped      atomic.Uint64
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		logger:     logger,
		cfg:        cfg,
		eventCh:    make(chan Event, max(1, cfg.BufferSize)),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) Emit(e Event) {
	if !r.cfg.EventsEnabled {
		return
	}
	select {
	case r.eventCh <- e:
	default:
		if r.dropped.Add(1) == 1 {
			r.logger.Warn("telemetry event buffer full, dropping events",
				slog.Int("buffer_size", cap(r.eventCh)))
		}
	}
}

// Dropped reports how many events were discarded because the buffer was full.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.EventsEnabled {
		r.logger.Info("telemetry events disabled")
		return
	}

	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.flushEvents(ctx, r.cfg.FlushInterval)

		r.logger.Info("telemetry recorder started",
			slog.Int("buffer_size", cap(r.eventCh)),
			slog.Duration("flush_interval", r.cfg.FlushInterval))
	})
}

// Close stops the flush goroutine after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) flushEvents(ctx context.Context, interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	threshold := max(1, r.cfg.FlushThreshold)
	batch := make([]Event, 0, threshold)

	for {
		select {
		case <-ctx.Done():
			r.drainAndFlush(batch)
			return
		case <-r.shutdownCh:
			r.drainAndFlush(batch)
			return
		case e := <-r.eventCh:
			batch = append(batch, e)
			if len(batch) >= threshold {
				r.writeBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.writeBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) drainAndFlush(batch []Event) {
	for {
		select {
		case e := <-r.eventCh:
			batch = append(batch, e)
		default:
			r.writeBatch(batch)
			return
		}
	}
}

func (r *Recorder) writeBatch(batch []Event) {
	ctx := context.Background()
	for _, e := range batch {
		attrs := make([]slog.Attr, 0, len(e.Attrs)+2)
		attrs = append(attrs, slog.String("kind", e.Kind), slog.Time("event_time", e.Time))
		attrs = append(attrs, e.Attrs...)
		r.logger.LogAttrs(ctx, e.Level, e.Message, attrs...)
	}
}

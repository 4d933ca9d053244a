package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mall"

type CacheSizer interface {
	Sizes() map[string]int
}

type OriginTracker interface {
	Open() int
}

type HitRatioSource interface {
	Stats() (hits, misses uint64, ratio float64)
}

type DropCounter interface {
	Dropped() uint64
}

// CollectorSources lists what the collector reads on each scrape. Nil
// sources are skipped.
type CollectorSources struct {
	Aggregator *Aggregator
	Caches     CacheSizer
	Origins    OriginTracker
	Slugs      HitRatioSource
	Events     DropCounter
}

// Collector exposes the in-process aggregates as Prometheus gauges. Values are
// computed at scrape time from the same snapshot the diagnostics API uses.
type Collector struct {
	src CollectorSources

	requests      *prometheus.Desc
	avgElapsed    *prometheus.Desc
	slowest       *prometheus.Desc
	errorRate     *prometheus.Desc
	cacheEntries  *prometheus.Desc
	origins       *prometheus.Desc
	slugHits      *prometheus.Desc
	slugMisses    *prometheus.Desc
	eventsDropped *prometheus.Desc
}

func NewCollector(src CollectorSources) *Collector {
	return &Collector{
		src: src,
		requests: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "requests", "recorded"),
			"Number of requests currently held in the bounded metrics log",
			nil, nil),
		avgElapsed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "requests", "average_elapsed_ms"),
			"Mean elapsed time of the recorded requests in milliseconds",
			nil, nil),
		slowest: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "requests", "slowest_elapsed_ms"),
			"Elapsed time of the slowest recorded request in milliseconds",
			[]string{"route"}, nil),
		errorRate: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "requests", "error_rate_percent"),
			"Share of recorded requests with status >= 400",
			nil, nil),
		cacheEntries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", "entries"),
			"Entries held per cache namespace, including expired entries not yet collected",
			[]string{"namespace"}, nil),
		origins: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "rate_counter", "origins"),
			"Distinct origins with an open counting window",
			nil, nil),
		slugHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "slug_cache", "hits_total"),
			"Shop slug cache hits",
			nil, nil),
		slugMisses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "slug_cache", "misses_total"),
			"Shop slug cache misses",
			nil, nil),
		eventsDropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "events_dropped_total"),
			"Telemetry events discarded because the sink buffer was full",
			nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.requests
	ch <- c.avgElapsed
	ch <- c.slowest
	ch <- c.errorRate
	ch <- c.cacheEntries
	ch <- c.origins
	ch <- c.slugHits
	ch <- c.slugMisses
	ch <- c.eventsDropped
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.src.Aggregator != nil {
		stats := c.src.Aggregator.Stats()
		ch <- prometheus.MustNewConstMetric(c.requests, prometheus.GaugeValue, float64(stats.Count))
		ch <- prometheus.MustNewConstMetric(c.avgElapsed, prometheus.GaugeValue, stats.AverageElapsedMs)
		ch <- prometheus.MustNewConstMetric(c.slowest, prometheus.GaugeValue, stats.SlowestElapsedMs, stats.SlowestRoute)
		ch <- prometheus.MustNewConstMetric(c.errorRate, prometheus.GaugeValue, stats.ErrorRatePct)
	}
	if c.src.Caches != nil {
		for name, size := range c.src.Caches.Sizes() {
			ch <- prometheus.MustNewConstMetric(c.cacheEntries, prometheus.GaugeValue, float64(size), name)
		}
	}
	if c.src.Origins != nil {
		ch <- prometheus.MustNewConstMetric(c.origins, prometheus.GaugeValue, float64(c.src.Origins.Open()))
	}
	if c.src.Slugs != nil {
		hits, misses, _ := c.src.Slugs.Stats()
		ch <- prometheus.MustNewConstMetric(c.slugHits, prometheus.CounterValue, float64(hits))
		ch <- prometheus.MustNewConstMetric(c.slugMisses, prometheus.CounterValue, float64(misses))
	}
	if c.src.Events != nil {
		ch <- prometheus.MustNewConstMetric(c.eventsDropped, prometheus.CounterValue, float64(c.src.Events.Dropped()))
	}
}

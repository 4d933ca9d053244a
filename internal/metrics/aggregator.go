package metrics

import (
	"fmt"
	"strings"
)

const (
	recentTrendSize = 10

	DefaultHeapLimit   = 500 << 20
	latencyLimitMs     = 500.0
	errorRateLimitPct  = 5.0
	withinLimitsAdvice = "Performance is within acceptable limits"
)

// Aggregator derives read-only summaries from a Log. Each call works on its
// own snapshot, so results are internally consistent even while requests
// keep appending.
type Aggregator struct {
	log       *Log
	probe     MemoryProbe
	heapLimit uint64
}

type AggregatorOption func(*Aggregator)

// WithHeapLimit sets the heap size, in bytes, above which Recommendations
// reports high memory usage.
func WithHeapLimit(bytes uint64) AggregatorOption {
	return func(a *Aggregator) {
		a.heapLimit = bytes
	}
}

func NewAggregator(log *Log, probe MemoryProbe, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		log:       log,
		probe:     probe,
		heapLimit: DefaultHeapLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) Stats() Stats {
	return computeStats(a.log.Snapshot())
}

func computeStats(records []Record) Stats {
	stats := Stats{
		Count:             len(records),
		RecentMemoryTrend: []int64{},
	}
	if len(records) == 0 {
		return stats
	}

	var total float64
	var errCount int
	slowest := 0
	for i, r := range records {
		total += r.ElapsedMs
		if r.IsError() {
			errCount++
		}
		if r.ElapsedMs > records[slowest].ElapsedMs {
			slowest = i
		}
	}

	stats.AverageElapsedMs = total / float64(len(records))
	stats.ErrorRatePct = 100 * float64(errCount) / float64(len(records))
	stats.SlowestRoute = records[slowest].Route
	stats.SlowestElapsedMs = records[slowest].ElapsedMs

	for _, r := range records[max(0, len(records)-recentTrendSize):] {
		stats.RecentMemoryTrend = append(stats.RecentMemoryTrend, r.Memory.HeapUsed)
	}
	return stats
}

func (a *Aggregator) SlowRequests(thresholdMs float64) []Record {
	return a.log.Filter(func(r Record) bool {
		return r.ElapsedMs > thresholdMs
	})
}

func (a *Aggregator) ErrorRequests() []Record {
	return a.log.Filter(Record.IsError)
}

// EndpointStats matches records whose route equals or contains route and,
// when method is non-empty, whose method matches case-insensitively.
func (a *Aggregator) EndpointStats(route, method string) EndpointStats {
	matched := a.log.Filter(func(r Record) bool {
		if r.Route != route && !strings.Contains(r.Route, route) {
			return false
		}
		return method == "" || strings.EqualFold(r.Method, method)
	})

	es := EndpointStats{
		Route:   route,
		Method:  strings.ToUpper(method),
		Records: matched,
	}
	if len(matched) == 0 {
		es.NoData = true
		return es
	}

	es.Count = len(matched)
	es.MinElapsedMs = matched[0].ElapsedMs
	es.MaxElapsedMs = matched[0].ElapsedMs
	var total float64
	for _, r := range matched {
		total += r.ElapsedMs
		es.MinElapsedMs = min(es.MinElapsedMs, r.ElapsedMs)
		es.MaxElapsedMs = max(es.MaxElapsedMs, r.ElapsedMs)
	}
	es.AvgElapsedMs = total / float64(len(matched))
	return es
}

// Recommendations is a heuristic advisory list. It never fails; with nothing
// to report it returns a single "within acceptable limits" line.
func (a *Aggregator) Recommendations() []string {
	records := a.log.Snapshot()
	stats := computeStats(records)

	var advice []string
	if stats.AverageElapsedMs > latencyLimitMs {
		advice = append(advice, fmt.Sprintf(
			"Average response time is %.0fms (limit %.0fms): consider caching hot read paths or optimizing queries",
			stats.AverageElapsedMs, latencyLimitMs))
	}
	if stats.ErrorRatePct > errorRateLimitPct {
		advice = append(advice, fmt.Sprintf(
			"Error rate is %.1f%% (limit %.0f%%): review the error requests for failing endpoints",
			stats.ErrorRatePct, errorRateLimitPct))
	}
	if a.probe != nil {
		if heap := a.probe.Usage().HeapUsed; heap > a.heapLimit {
			advice = append(advice, fmt.Sprintf(
				"Heap usage is %dMB (limit %dMB): check for leaks or oversized caches",
				heap>>20, a.heapLimit>>20))
		}
	}
	if endpoint, count := mostFrequentSlow(records, a.log.SlowThresholdMs()); count > 0 {
		advice = append(advice, fmt.Sprintf(
			"Most frequent slow endpoint is %s with %d slow requests: consider optimizing it first",
			endpoint, count))
	}

	if len(advice) == 0 {
		return []string{withinLimitsAdvice}
	}
	return advice
}

// mostFrequentSlow returns the "METHOD route" with the most records above
// thresholdMs. Ties go to the endpoint that became slow first.
func mostFrequentSlow(records []Record, thresholdMs float64) (string, int) {
	if thresholdMs <= 0 {
		return "", 0
	}
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if r.ElapsedMs <= thresholdMs {
			continue
		}
		key := r.Method + " " + r.Route
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var best string
	var bestCount int
	for _, key := range order {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	return best, bestCount
}

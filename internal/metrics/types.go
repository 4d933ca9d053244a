package metrics

import "time"

// MemoryUsage is a point-in-time reading of process memory, in bytes.
type MemoryUsage struct {
	Resident  uint64
	HeapUsed  uint64
	HeapTotal uint64
	External  uint64
}

// Sub returns the signed change from start to u.
func (u MemoryUsage) Sub(start MemoryUsage) MemoryDelta {
	return MemoryDelta{
		Resident:  int64(u.Resident) - int64(start.Resident),
		HeapUsed:  int64(u.HeapUsed) - int64(start.HeapUsed),
		HeapTotal: int64(u.HeapTotal) - int64(start.HeapTotal),
		External:  int64(u.External) - int64(start.External),
	}
}

type MemoryDelta struct {
	Resident  int64 `json:"resident"`
	HeapUsed  int64 `json:"heap_used"`
	HeapTotal int64 `json:"heap_total"`
	External  int64 `json:"external"`
}

// Record is one completed request. It is never modified after it has been
// appended to a Log.
type Record struct {
	Route      string      `json:"route"`
	Method     string      `json:"method"`
	ElapsedMs  float64     `json:"elapsed_ms"`
	StatusCode int         `json:"status_code"`
	Timestamp  time.Time   `json:"timestamp"`
	Memory     MemoryDelta `json:"memory_delta"`
	Origin     string      `json:"origin,omitempty"`
}

func (r Record) IsError() bool {
	return r.StatusCode >= 400
}

type Stats struct {
	Count             int     `json:"count"`
	AverageElapsedMs  float64 `json:"average_elapsed_ms"`
	SlowestRoute      string  `json:"slowest_route"`
	SlowestElapsedMs  float64 `json:"slowest_elapsed_ms"`
	ErrorRatePct      float64 `json:"error_rate_pct"`
	RecentMemoryTrend []int64 `json:"recent_memory_trend"`
}

// EndpointStats summarizes the records matching one route query. NoData is
// set instead of returning an error when nothing matched.
type EndpointStats struct {
	Route        string   `json:"route"`
	Method       string   `json:"method,omitempty"`
	NoData       bool     `json:"no_data"`
	Count        int      `json:"count"`
	MinElapsedMs float64  `json:"min_elapsed_ms"`
	AvgElapsedMs float64  `json:"avg_elapsed_ms"`
	MaxElapsedMs float64  `json:"max_elapsed_ms"`
	Records      []Record `json:"records"`
}

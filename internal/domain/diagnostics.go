package domain

import "mallapi/internal/metrics"

type RecordsResponse struct {
	Count   int              `json:"count"`
	Records []metrics.Record `json:"records"`
}

type SlowRequestsResponse struct {
	ThresholdMs float64 `json:"threshold_ms"`
	RecordsResponse
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

type CacheNamespace struct {
	Name        string `json:"name"`
	Entries     int    `json:"entries"`
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
}

type CacheResponse struct {
	Namespaces []CacheNamespace `json:"namespaces"`
}

type ClearCacheResponse struct {
	Cleared int `json:"cleared"`
}

type OriginCount struct {
	Address string `json:"address"`
	Count   int    `json:"count"`
	Class   string `json:"class"`
}

type OriginsResponse struct {
	Min     int           `json:"min"`
	Origins []OriginCount `json:"origins"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

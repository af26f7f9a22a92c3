package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests   atomic.Int64
	VideoRequests    atomic.Int64
	PlaylistRequests atomic.Int64
	ChannelRequests  atomic.Int64
	PageFetches      atomic.Int64
	FetchErrors      atomic.Int64
	PayloadMisses    atomic.Int64
}

// GetMetrics returns a snapshot of all counters including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests":   metrics.SearchRequests.Load(),
		"video_requests":    metrics.VideoRequests.Load(),
		"playlist_requests": metrics.PlaylistRequests.Load(),
		"channel_requests":  metrics.ChannelRequests.Load(),
		"page_fetches":      metrics.PageFetches.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"payload_misses":    metrics.PayloadMisses.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "video_requests", "playlist_requests", "channel_requests",
		"page_fetches", "fetch_errors", "payload_misses",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrSearchRequests()   { metrics.SearchRequests.Add(1) }
func IncrVideoRequests()    { metrics.VideoRequests.Add(1) }
func IncrPlaylistRequests() { metrics.PlaylistRequests.Add(1) }
func IncrChannelRequests()  { metrics.ChannelRequests.Add(1) }
func IncrPayloadMisses()    { metrics.PayloadMisses.Add(1) }

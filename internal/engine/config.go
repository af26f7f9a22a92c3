package engine

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	BaseURL              string // YouTube origin, overrideable for tests
	FetchTimeout         time.Duration
	MaxPageBytes         int64  // cap on a single fetched document
	SearchLimit          int    // default result limit for search
	RelatedLimit         int    // default limit for related videos
	PlaylistLimit        int    // default limit for playlist items
	ChannelLimit         int    // default limit for channel uploads
	HistoryPath          string // sqlite lookup history location, "" = default
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = plain HTTP client only
	FetchLimiter  *rate.Limiter  // nil = unlimited outbound fetches
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube, history).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration, filling in
// defaults for anything left zero.
func Init(c Config) {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.youtube.com"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.MaxPageBytes <= 0 {
		c.MaxPageBytes = 8 * 1024 * 1024
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = 10
	}
	if c.RelatedLimit <= 0 {
		c.RelatedLimit = 20
	}
	if c.PlaylistLimit <= 0 {
		c.PlaylistLimit = 100
	}
	if c.ChannelLimit <= 0 {
		c.ChannelLimit = 30
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout: c.FetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		}
	}
	cfg = c
	Cfg = &cfg
}

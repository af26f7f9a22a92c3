// nd-tube-api — YouTube metadata lookup service.
//
// Scrapes the JSON payloads embedded in YouTube HTML pages (search
// results, watch, playlist and channel pages) into stable typed records.
// Runs either as a REST server (default) or, with -mcp, as an MCP server
// exposing video_search, video_info, playlist_info and channel_info.
package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/ndongo78/nd-tube-api/internal/apiserver"
	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/history"
	"github.com/ndongo78/nd-tube-api/internal/tubeserver"
)

var (
	version  = "dev"
	restPort = env.Str("PORT", "8080")
	mcpPort  = env.Str("MCP_PORT", "8891")
)

func main() {
	mcpMode := flag.Bool("mcp", false, "serve MCP tools instead of REST")
	flag.Parse()

	initEngine()

	if *mcpMode {
		slog.Info("starting nd-tube-api", slog.String("mode", "mcp"), slog.String("port", mcpPort))

		server := mcp.NewServer(&mcp.Implementation{
			Name:    "nd-tube-api",
			Version: version,
		}, nil)
		tubeserver.RegisterTools(server)
		slog.Info("tools registered", slog.Int("count", 4))

		if err := mcpserver.Run(server, mcpserver.Config{
			Name:         "nd-tube-api",
			Version:      version,
			Port:         mcpPort,
			WriteTimeout: 120 * time.Second,
			Metrics:      engine.FormatMetrics,
		}); err != nil {
			slog.Error("server failed", slog.Any("error", err))
		}
		return
	}

	slog.Info("starting nd-tube-api", slog.String("mode", "rest"), slog.String("port", restPort))
	if err := apiserver.Run(restPort); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		BaseURL:              env.Str("YOUTUBE_BASE_URL", "https://www.youtube.com"),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 15*time.Second),
		MaxPageBytes:         int64(env.Int("MAX_PAGE_BYTES", 8*1024*1024)),
		SearchLimit:          env.Int("SEARCH_LIMIT", 10),
		RelatedLimit:         env.Int("RELATED_LIMIT", 20),
		PlaylistLimit:        env.Int("PLAYLIST_LIMIT", 100),
		ChannelLimit:         env.Int("CHANNEL_LIMIT", 30),
		HistoryPath:          env.Str("HISTORY_PATH", ""),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}

	// YouTube serves consent walls and challenges to clients with
	// mismatched TLS fingerprints; the browser-profile client avoids
	// most of them. Plain HTTP remains the fallback.
	if env.Str("BROWSER_CLIENT", "on") != "off" {
		bc, err := engine.NewBrowserClient()
		if err != nil {
			slog.Warn("browser client init failed, using plain http", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Info("browser client initialized")
		}
	}

	if rps := env.Float("FETCH_RPS", 2.0); rps > 0 {
		c.FetchLimiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	engine.Init(c)
	history.SetPath(c.HistoryPath)

	cacheTTL := env.Duration("CACHE_TTL", 10*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}

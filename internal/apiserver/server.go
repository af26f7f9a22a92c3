// Package apiserver exposes the scraping engine over plain REST for
// callers that do not speak MCP.
package apiserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndongo78/nd-tube-api/internal/engine"
)

// NewRouter builds the REST router. All lookup routes are read-only GETs.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLog())

	router.GET("/healthz", health)
	router.GET("/metrics", metrics)

	api := router.Group("/api")
	api.GET("/search", searchHandler)
	api.GET("/videos/:id", videoHandler)
	api.GET("/playlists/:id", playlistHandler)
	api.GET("/channels/:id", channelHandler)
	api.GET("/history", historyHandler)

	return router
}

// Run serves the router until the listener fails.
func Run(port string) error {
	router := NewRouter()
	slog.Info("rest server listening", slog.String("port", port))
	return router.Run(":" + port)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func metrics(c *gin.Context) {
	c.String(http.StatusOK, engine.FormatMetrics())
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
		)
	}
}

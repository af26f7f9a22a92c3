package apiserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
	"github.com/ndongo78/nd-tube-api/internal/engine/history"
	"github.com/ndongo78/nd-tube-api/internal/engine/youtube"
)

// searchHandler handles GET /api/search?q=...&type=...&limit=...
func searchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	out, err := youtube.Search(c.Request.Context(), query, youtube.ParseKind(c.Query("type")), intQuery(c, "limit"))
	if err != nil {
		lookupError(c, err)
		return
	}
	recordLookup(c, "search", query, len(out.Results))
	c.JSON(http.StatusOK, out)
}

// videoHandler handles GET /api/videos/:id
func videoHandler(c *gin.Context) {
	id := c.Param("id")
	out, err := youtube.VideoInfo(c.Request.Context(), id)
	if err != nil {
		lookupError(c, err)
		return
	}
	recordLookup(c, "video", id, 1)
	c.JSON(http.StatusOK, out)
}

// playlistHandler handles GET /api/playlists/:id?limit=...
func playlistHandler(c *gin.Context) {
	id := c.Param("id")
	out, err := youtube.PlaylistInfo(c.Request.Context(), id, intQuery(c, "limit"))
	if err != nil {
		lookupError(c, err)
		return
	}
	recordLookup(c, "playlist", id, len(out.Items))
	c.JSON(http.StatusOK, out)
}

// channelHandler handles GET /api/channels/:id?limit=...
func channelHandler(c *gin.Context) {
	id := c.Param("id")
	out, err := youtube.ChannelInfo(c.Request.Context(), id, intQuery(c, "limit"))
	if err != nil {
		lookupError(c, err)
		return
	}
	recordLookup(c, "channel", id, len(out.Uploads))
	c.JSON(http.StatusOK, out)
}

// historyHandler handles GET /api/history?limit=...
func historyHandler(c *gin.Context) {
	entries, err := history.Recent(c.Request.Context(), intQuery(c, "limit"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

// lookupError maps engine failures onto HTTP statuses. A page that came
// back without the expected payload is an upstream problem, not ours.
func lookupError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	if !errors.Is(err, extract.ErrPayloadNotFound) && c.Request.Context().Err() != nil {
		status = http.StatusGatewayTimeout
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func intQuery(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}

func recordLookup(c *gin.Context, operation, subject string, results int) {
	if err := history.Record(c.Request.Context(), operation, subject, results); err != nil {
		slog.Warn("history record failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

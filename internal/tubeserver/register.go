// Package tubeserver registers the MCP tool surface over the scraping
// engine: video_search, video_info, playlist_info, channel_info.
package tubeserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ndongo78/nd-tube-api/internal/engine/history"
	"github.com/ndongo78/nd-tube-api/internal/engine/youtube"
)

// RegisterTools registers all lookup tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerVideoSearch(server)
	registerVideoInfo(server)
	registerPlaylistInfo(server)
	registerChannelInfo(server)
}

func registerVideoSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_search",
		Description: "Search YouTube. Returns structured JSON records (videos, playlists, channels) with title, URL, channel, duration, view counts and thumbnails, plus a continuation token for the next page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input youtube.SearchInput) (*mcp.CallToolResult, *youtube.SearchOutput, error) {
		if input.Query == "" {
			return nil, nil, fmt.Errorf("query is required")
		}
		out, err := youtube.Search(ctx, input.Query, youtube.ParseKind(input.Type), input.Limit)
		if err != nil {
			return nil, nil, err
		}
		recordLookup(ctx, "search", input.Query, len(out.Results))
		return nil, out, nil
	})
}

func registerVideoInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_info",
		Description: "Look up one YouTube video by id. Returns metadata (title, channel, duration, views, description, publish date, keywords), available caption tracks, and related videos.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input youtube.VideoInput) (*mcp.CallToolResult, *youtube.VideoOutput, error) {
		if input.ID == "" {
			return nil, nil, fmt.Errorf("id is required")
		}
		out, err := youtube.VideoInfo(ctx, input.ID)
		if err != nil {
			return nil, nil, err
		}
		recordLookup(ctx, "video", input.ID, 1)
		return nil, out, nil
	})
}

func registerPlaylistInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "playlist_info",
		Description: "Look up one YouTube playlist by id. Returns playlist metadata, the first page of items, and a continuation token when the playlist is longer.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input youtube.PlaylistInput) (*mcp.CallToolResult, *youtube.PlaylistOutput, error) {
		if input.ID == "" {
			return nil, nil, fmt.Errorf("id is required")
		}
		out, err := youtube.PlaylistInfo(ctx, input.ID, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		recordLookup(ctx, "playlist", input.ID, len(out.Items))
		return nil, out, nil
	})
}

func registerChannelInfo(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "channel_info",
		Description: "Look up one YouTube channel by id (UC…) or @handle. Returns channel metadata (title, handle, subscribers, description) and recent uploads.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input youtube.ChannelInput) (*mcp.CallToolResult, *youtube.ChannelOutput, error) {
		if input.ID == "" {
			return nil, nil, fmt.Errorf("id is required")
		}
		out, err := youtube.ChannelInfo(ctx, input.ID, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		recordLookup(ctx, "channel", input.ID, len(out.Uploads))
		return nil, out, nil
	})
}

// recordLookup logs the lookup into history. Failures are not the
// caller's problem.
func recordLookup(ctx context.Context, operation, subject string, results int) {
	if err := history.Record(ctx, operation, subject, results); err != nil {
		slog.Warn("history record failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}

package youtube

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// PlaylistInfo scrapes a playlist page: header metadata plus up to limit
// items from the first page, with a continuation token when the playlist
// is longer than what the page embeds (~100 entries).
func PlaylistInfo(ctx context.Context, id string, limit int) (*PlaylistOutput, error) {
	engine.IncrPlaylistRequests()
	if id == "" {
		return nil, fmt.Errorf("playlist info: id is required")
	}
	limit = normLimit(limit, engine.Cfg.PlaylistLimit)

	cacheKey := engine.CacheKey("playlist", id, fmt.Sprint(limit))
	if out, ok := engine.CacheLoadJSON[*PlaylistOutput](ctx, cacheKey); ok {
		return out, nil
	}

	doc, err := engine.FetchPage(ctx, PlaylistURL(id))
	if err != nil {
		return nil, fmt.Errorf("playlist %s: %w", id, err)
	}

	data, err := extract.Payload(doc, extract.PayloadInitialData)
	if err != nil {
		engine.IncrPayloadMisses()
		return nil, fmt.Errorf("playlist %s: %w", id, err)
	}

	var items []Video
	for _, m := range extract.CollectObjects(data, "playlistVideoRenderer") {
		items = append(items, videoFromRenderer(m))
	}

	out := &PlaylistOutput{
		Playlist:     playlistHeader(id, data),
		Items:        assembleVideos(items, limit),
		Continuation: continuationToken(data),
	}
	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}

// playlistHeader reads the playlist's own metadata. Older pages use
// playlistHeaderRenderer, newer ones a sidebar primary-info renderer;
// both are tried and missing fields degrade to zero values.
func playlistHeader(id string, data json.RawMessage) Playlist {
	p := Playlist{ID: id, URL: PlaylistURL(id)}

	if headers := extract.CollectObjects(data, "playlistHeaderRenderer"); len(headers) > 0 {
		h := headers[0]
		p.Title = extract.Text(h["title"])
		p.VideoCount = extract.Count(h["numVideosText"])
		if run := extract.FirstRun(h["ownerText"]); run != nil {
			p.Channel.Title, _ = run["text"].(string)
			p.Channel.ID, _ = extract.At(run, "navigationEndpoint", "browseEndpoint", "browseId").(string)
			if p.Channel.ID != "" {
				p.Channel.URL = ChannelURL(p.Channel.ID, "")
			}
		}
		p.Thumbnails = normalizeThumbnails(extract.At(h, "playlistHeaderBanner", "heroPlaylistThumbnailRenderer", "thumbnail"))
		return p
	}

	if infos := extract.CollectObjects(data, "playlistSidebarPrimaryInfoRenderer"); len(infos) > 0 {
		h := infos[0]
		p.Title = extract.Text(h["title"])
		if stats, ok := h["stats"].([]any); ok && len(stats) > 0 {
			p.VideoCount = extract.Count(stats[0])
		}
		p.Thumbnails = normalizeThumbnails(extract.At(h, "thumbnailRenderer", "playlistVideoThumbnailRenderer", "thumbnail"))
	}
	if owners := extract.CollectObjects(data, "videoOwnerRenderer"); len(owners) > 0 {
		if run := extract.FirstRun(owners[0]["title"]); run != nil {
			p.Channel.Title, _ = run["text"].(string)
			p.Channel.ID, _ = extract.At(run, "navigationEndpoint", "browseEndpoint", "browseId").(string)
			if p.Channel.ID != "" {
				p.Channel.URL = ChannelURL(p.Channel.ID, "")
			}
		}
	}
	return p
}

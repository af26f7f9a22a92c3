package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// ChannelInfo scrapes a channel's videos tab for metadata and recent
// uploads. idOrHandle accepts both the UC… channel id and the @handle
// form shown in channel URLs.
func ChannelInfo(ctx context.Context, idOrHandle string, limit int) (*ChannelOutput, error) {
	engine.IncrChannelRequests()
	if idOrHandle == "" {
		return nil, fmt.Errorf("channel info: id or handle is required")
	}
	limit = normLimit(limit, engine.Cfg.ChannelLimit)

	cacheKey := engine.CacheKey("channel", idOrHandle, fmt.Sprint(limit))
	if out, ok := engine.CacheLoadJSON[*ChannelOutput](ctx, cacheKey); ok {
		return out, nil
	}

	doc, err := engine.FetchPage(ctx, channelPageURL(idOrHandle))
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", idOrHandle, err)
	}

	data, err := extract.Payload(doc, extract.PayloadInitialData)
	if err != nil {
		engine.IncrPayloadMisses()
		return nil, fmt.Errorf("channel %s: %w", idOrHandle, err)
	}

	var uploads []Video
	for _, key := range []string{"gridVideoRenderer", "videoRenderer"} {
		for _, m := range extract.CollectObjects(data, key) {
			uploads = append(uploads, videoFromRenderer(m))
		}
	}

	out := &ChannelOutput{
		Channel: channelMetadata(idOrHandle, data),
		Uploads: assembleVideos(uploads, limit),
	}
	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}

// channelMetadata reads channelMetadataRenderer plus whatever header
// renderer the page ships. All fields are best-effort.
func channelMetadata(idOrHandle string, data json.RawMessage) Channel {
	c := Channel{}
	if strings.HasPrefix(idOrHandle, "UC") {
		c.ID = idOrHandle
	}

	if metas := extract.CollectObjects(data, "channelMetadataRenderer"); len(metas) > 0 {
		meta := metas[0]
		c.Title = extract.Text(meta["title"])
		c.Description = extract.Text(meta["description"])
		if id, ok := meta["externalId"].(string); ok && id != "" {
			c.ID = id
		}
		if vanity, ok := meta["vanityChannelUrl"].(string); ok {
			if at := strings.Index(vanity, "@"); at >= 0 {
				c.Handle = vanity[at:]
			}
		}
		c.Thumbnails = normalizeThumbnails(extract.At(meta, "avatar"))
	}

	if headers := extract.CollectObjects(data, "c4TabbedHeaderRenderer"); len(headers) > 0 {
		h := headers[0]
		if c.Title == "" {
			c.Title = extract.Text(h["title"])
		}
		c.Subscribers = extract.Text(h["subscriberCountText"])
		c.VideoCount = extract.Count(h["videosCountText"])
		if len(c.Thumbnails) == 0 {
			c.Thumbnails = normalizeThumbnails(extract.At(h, "avatar"))
		}
	}

	// Newer pages replaced the c4 header with a generic page header whose
	// metadata rows carry the subscriber text.
	if c.Subscribers == "" {
		for _, m := range extract.CollectObjects(data, "contentMetadataViewModel") {
			rows, _ := m["metadataRows"].([]any)
			for _, row := range rows {
				parts, _ := extract.At(row, "metadataParts").([]any)
				for _, part := range parts {
					if text, ok := extract.At(part, "text", "content").(string); ok &&
						strings.Contains(strings.ToLower(text), "subscriber") {
						c.Subscribers = text
					}
				}
			}
		}
	}

	c.URL = ChannelURL(c.ID, handleBase(c.Handle))
	return c
}

func handleBase(handle string) string {
	if handle == "" {
		return ""
	}
	return "/" + handle
}


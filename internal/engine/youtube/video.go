package youtube

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// descriptionMax caps the full-text description a watch page embeds;
// renderer snippets are already short.
const descriptionMax = 500

// playerDetails is the typed slice of ytInitialPlayerResponse we rely on.
// Everything else on the watch page is read through the generic walker.
type playerDetails struct {
	VideoDetails struct {
		VideoID          string   `json:"videoId"`
		Title            string   `json:"title"`
		Author           string   `json:"author"`
		ChannelID        string   `json:"channelId"`
		LengthSeconds    string   `json:"lengthSeconds"`
		ViewCount        string   `json:"viewCount"`
		ShortDescription string   `json:"shortDescription"`
		Keywords         []string `json:"keywords"`
		IsLiveContent    bool     `json:"isLiveContent"`
		Thumbnail        struct {
			Thumbnails []any `json:"thumbnails"`
		} `json:"thumbnail"`
	} `json:"videoDetails"`
	Microformat struct {
		PlayerMicroformatRenderer struct {
			PublishDate string `json:"publishDate"`
			Category    string `json:"category"`
			OwnerURL    string `json:"ownerProfileUrl"`
		} `json:"playerMicroformatRenderer"`
	} `json:"microformat"`
}

// VideoInfo scrapes a watch page: core metadata from the player response,
// caption tracks, and related videos from the initial-data tree. The
// player response is required; initial data is best-effort, so a page
// that only carries the player payload still yields a record with no
// related list.
func VideoInfo(ctx context.Context, id string) (*VideoOutput, error) {
	engine.IncrVideoRequests()
	if id == "" {
		return nil, fmt.Errorf("video info: id is required")
	}

	cacheKey := engine.CacheKey("video", id)
	if out, ok := engine.CacheLoadJSON[*VideoOutput](ctx, cacheKey); ok {
		return out, nil
	}

	doc, err := engine.FetchPage(ctx, WatchURL(id))
	if err != nil {
		return nil, fmt.Errorf("video %s: %w", id, err)
	}

	player, err := extract.Payload(doc, extract.PayloadPlayerResponse)
	if err != nil {
		engine.IncrPayloadMisses()
		return nil, fmt.Errorf("video %s: %w", id, err)
	}

	var details playerDetails
	if err := json.Unmarshal(player, &details); err != nil {
		engine.IncrPayloadMisses()
		return nil, fmt.Errorf("video %s: %w", id, extract.ErrPayloadNotFound)
	}

	out := &VideoOutput{
		Video:       videoFromPlayer(id, details),
		Keywords:    details.VideoDetails.Keywords,
		Category:    details.Microformat.PlayerMicroformatRenderer.Category,
		PublishDate: details.Microformat.PlayerMicroformatRenderer.PublishDate,
		Captions:    collectCaptions(player),
	}

	// Related videos live in ytInitialData, which not every watch page
	// variant embeds. Its absence degrades, it does not fail the lookup.
	if data, err := extract.Payload(doc, extract.PayloadInitialData); err == nil {
		var related []Video
		for _, m := range extract.CollectObjects(data, "compactVideoRenderer") {
			related = append(related, videoFromRenderer(m))
		}
		// Newer watch pages ship lockup-free videoRenderer nodes instead.
		if len(related) == 0 {
			for _, m := range extract.CollectObjects(data, "videoRenderer") {
				related = append(related, videoFromRenderer(m))
			}
		}
		out.Related = assembleVideos(related, engine.Cfg.RelatedLimit)
	}

	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}

// videoFromPlayer maps the typed player response onto the canonical
// record shape shared with renderer-built videos.
func videoFromPlayer(id string, d playerDetails) Video {
	vd := d.VideoDetails
	if vd.VideoID != "" {
		id = vd.VideoID
	}
	var thumbs []Thumbnail
	if len(vd.Thumbnail.Thumbnails) > 0 {
		thumbs = normalizeThumbnails(vd.Thumbnail.Thumbnails)
	}
	ref := ChannelRef{ID: vd.ChannelID, Title: vd.Author}
	if vd.ChannelID != "" {
		ref.URL = ChannelURL(vd.ChannelID, "")
	}
	return Video{
		ID:          id,
		Title:       vd.Title,
		URL:         WatchURL(id),
		Channel:     ref,
		Duration:    vd.LengthSeconds,
		Views:       extract.Count(vd.ViewCount),
		ViewsText:   vd.ViewCount,
		Description: engine.TruncateRunes(vd.ShortDescription, descriptionMax, "…"),
		IsLive:      vd.IsLiveContent,
		Thumbnails:  thumbs,
	}
}

// collectCaptions walks the player response for caption track arrays.
func collectCaptions(player json.RawMessage) []CaptionTrack {
	var tracks []CaptionTrack
	for _, raw := range mustCollect(player, "captionTracks") {
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err != nil {
			continue
		}
		for _, m := range list {
			tracks = append(tracks, captionTrackFromNode(m))
		}
	}
	return assembleCaptions(tracks)
}

func mustCollect(data json.RawMessage, key string) []json.RawMessage {
	raws, err := extract.Collect(data, key)
	if err != nil {
		return nil
	}
	return raws
}

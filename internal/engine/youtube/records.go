package youtube

import (
	"sort"
	"strings"

	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// Renderer keys collected per search kind. Key order here fixes the
// output order when kinds are mixed: videos, then playlists, then
// channels, regardless of where the page interleaves them.
var (
	videoRendererKeys = []string{"videoRenderer", "compactVideoRenderer", "gridVideoRenderer"}
)

// normalizeThumbnails flattens either a {"thumbnails": [...]} wrapper or
// a bare candidate list into a slice sorted by width descending, missing
// width treated as 0. The sort is stable so equally sized candidates keep
// their source order.
func normalizeThumbnails(v any) []Thumbnail {
	list, ok := v.([]any)
	if !ok {
		list, _ = extract.At(v, "thumbnails").([]any)
	}
	if len(list) == 0 {
		return nil
	}
	out := make([]Thumbnail, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t := Thumbnail{}
		t.URL, _ = m["url"].(string)
		if w, ok := m["width"].(float64); ok {
			t.Width = int(w)
		}
		if h, ok := m["height"].(float64); ok {
			t.Height = int(h)
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Width > out[j].Width })
	return out
}

// ownerRef resolves the owning channel from a renderer's byline fields.
// The first run of the first populated field carries the display name and
// a navigation endpoint with the channel's browse id. Absent bylines
// yield a zero ChannelRef, never an error.
func ownerRef(m map[string]any) ChannelRef {
	for _, field := range []string{"longBylineText", "ownerText", "shortBylineText"} {
		run := extract.FirstRun(m[field])
		if run == nil {
			continue
		}
		ref := ChannelRef{}
		ref.Title, _ = run["text"].(string)
		ref.ID, _ = extract.At(run, "navigationEndpoint", "browseEndpoint", "browseId").(string)
		canonical, _ := extract.At(run, "navigationEndpoint", "browseEndpoint", "canonicalBaseUrl").(string)
		if ref.ID != "" || canonical != "" {
			ref.URL = ChannelURL(ref.ID, canonical)
		}
		return ref
	}
	return ChannelRef{}
}

// isLiveBadge reports whether any badge label marks the video as live.
// YouTube localizes badge text, but the LIVE token survives translation.
func isLiveBadge(m map[string]any) bool {
	badges, _ := m["badges"].([]any)
	for _, b := range badges {
		label, _ := extract.At(b, "metadataBadgeRenderer", "label").(string)
		if strings.Contains(strings.ToLower(label), "live") {
			return true
		}
	}
	return false
}

// videoFromRenderer builds a Video from any video-shaped renderer node.
// Every field is optional in the source: missing keys degrade to zero
// values so one malformed renderer never aborts the rest of the page.
func videoFromRenderer(m map[string]any) Video {
	v := Video{}
	v.ID, _ = m["videoId"].(string)
	v.URL = WatchURL(v.ID)
	v.Title = extract.Text(m["title"])
	if v.Title == "" {
		v.Title = extract.Text(m["headline"])
	}
	v.Channel = ownerRef(m)

	v.Duration = extract.Text(m["lengthText"])
	if v.Duration == "" {
		v.Duration, _ = m["lengthSeconds"].(string)
	}

	v.ViewsText = extract.Text(m["viewCountText"])
	if v.ViewsText == "" {
		v.ViewsText = extract.Text(m["shortViewCountText"])
	}
	v.Views = extract.Count(m["viewCountText"])

	v.Published = extract.Text(m["publishedTimeText"])

	v.Description = extract.Text(m["descriptionSnippet"])
	if v.Description == "" {
		v.Description = extract.Text(extract.At(m, "detailedMetadataSnippets", 0, "snippetText"))
	}

	v.IsLive = isLiveBadge(m)
	v.Thumbnails = normalizeThumbnails(m["thumbnail"])
	return v
}

// playlistFromRenderer builds a Playlist from a playlistRenderer node.
func playlistFromRenderer(m map[string]any) Playlist {
	p := Playlist{}
	p.ID, _ = m["playlistId"].(string)
	p.URL = PlaylistURL(p.ID)
	p.Title = extract.Text(m["title"])
	p.Channel = ownerRef(m)

	if c := extract.Count(m["videoCount"]); c != nil {
		p.VideoCount = c
	} else {
		p.VideoCount = extract.Count(m["videoCountText"])
	}

	if thumbs := normalizeThumbnails(extract.At(m, "thumbnails", 0)); len(thumbs) > 0 {
		p.Thumbnails = thumbs
	} else {
		p.Thumbnails = normalizeThumbnails(extract.At(m, "thumbnailRenderer", "playlistVideoThumbnailRenderer", "thumbnail"))
	}
	return p
}

// channelFromRenderer builds a Channel from a channelRenderer node.
func channelFromRenderer(m map[string]any) Channel {
	c := Channel{}
	c.ID, _ = m["channelId"].(string)
	c.Title = extract.Text(m["title"])
	c.Description = extract.Text(m["descriptionSnippet"])
	c.Subscribers = extract.Text(m["subscriberCountText"])
	c.VideoCount = extract.Count(m["videoCountText"])

	canonical, _ := extract.At(m, "navigationEndpoint", "browseEndpoint", "canonicalBaseUrl").(string)
	c.URL = ChannelURL(c.ID, canonical)
	if strings.HasPrefix(canonical, "/@") {
		c.Handle = canonical[1:]
	}
	c.Thumbnails = normalizeThumbnails(m["thumbnail"])
	return c
}

// captionTrackFromNode builds a CaptionTrack from one entry of the player
// response's captionTracks array. Tracks without a base URL are useless
// and reported as zero records (the assembler drops them).
func captionTrackFromNode(m map[string]any) CaptionTrack {
	t := CaptionTrack{}
	t.URL, _ = m["baseUrl"].(string)
	t.Language, _ = m["languageCode"].(string)
	t.Name = extract.Text(m["name"])
	t.Kind, _ = m["kind"].(string)
	return t
}

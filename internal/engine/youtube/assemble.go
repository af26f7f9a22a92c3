package youtube

import "strings"

// identity returns the id-ish and url-ish parts of a search result. A
// record whose id and url are both empty has no identity and is dropped.
func (r SearchResult) identity() (id, url, title string) {
	switch {
	case r.Video != nil:
		return r.Video.ID, r.Video.URL, r.Video.Title
	case r.Playlist != nil:
		return r.Playlist.ID, r.Playlist.URL, r.Playlist.Title
	case r.Channel != nil:
		return r.Channel.ID, r.Channel.URL, r.Channel.Title
	}
	return "", "", ""
}

// identityKey is the composite dedup key: type plus the first non-empty
// of id, url, title. It is derived per call and never persisted.
func (r SearchResult) identityKey() string {
	id, url, title := r.identity()
	best := id
	if best == "" {
		best = url
	}
	if best == "" {
		best = title
	}
	return string(r.Type) + ":" + best
}

// assemble drops identity-less records, deduplicates by identity key
// keeping the first occurrence, and truncates to limit while preserving
// relative order. The input's order is the caller's requested category
// order, not any relevance score from the source tree.
func assemble(candidates []SearchResult, limit int) []SearchResult {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]SearchResult, 0, min(limit, len(candidates)))
	for _, r := range candidates {
		id, url, _ := r.identity()
		if id == "" && url == "" {
			continue
		}
		key := r.identityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// assembleVideos applies the same drop/dedupe/truncate policy to a plain
// video list (related videos, playlist items, channel uploads).
func assembleVideos(videos []Video, limit int) []Video {
	seen := make(map[string]struct{}, len(videos))
	out := make([]Video, 0, min(limit, len(videos)))
	for _, v := range videos {
		if v.ID == "" && v.URL == "" {
			continue
		}
		key := v.ID
		if key == "" {
			key = v.URL
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// assembleCaptions drops URL-less tracks and dedupes by URL.
func assembleCaptions(tracks []CaptionTrack) []CaptionTrack {
	seen := make(map[string]struct{}, len(tracks))
	out := make([]CaptionTrack, 0, len(tracks))
	for _, t := range tracks {
		if t.URL == "" {
			continue
		}
		if _, dup := seen[t.URL]; dup {
			continue
		}
		seen[t.URL] = struct{}{}
		out = append(out, t)
	}
	return out
}

// normLimit returns limit when positive, else the supplied default.
func normLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

// trimQuery collapses a user query for cache keys and history entries.
func trimQuery(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

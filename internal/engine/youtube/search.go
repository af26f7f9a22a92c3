package youtube

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// Search scrapes one results page for query and returns up to limit
// records of the requested kind. limit <= 0 uses the configured default.
// For KindAll the output orders videos first, then playlists, then
// channels. The continuation token, when the page carries one, lets a
// caller fetch the next page through the Innertube API (see PageConfig);
// this package itself never follows it.
func Search(ctx context.Context, query string, kind Kind, limit int) (*SearchOutput, error) {
	engine.IncrSearchRequests()
	query = trimQuery(query)
	limit = normLimit(limit, engine.Cfg.SearchLimit)

	cacheKey := engine.CacheKey("search", query, string(kind), fmt.Sprint(limit))
	if out, ok := engine.CacheLoadJSON[*SearchOutput](ctx, cacheKey); ok {
		return out, nil
	}

	doc, err := engine.FetchPage(ctx, searchURL(query, kind))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	data, err := extract.Payload(doc, extract.PayloadInitialData)
	if err != nil {
		engine.IncrPayloadMisses()
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	out := &SearchOutput{
		Query:        query,
		Results:      assemble(collectSearchResults(data, kind), limit),
		Continuation: continuationToken(data),
	}
	engine.CacheStoreJSON(ctx, cacheKey, out)
	return out, nil
}

// collectSearchResults gathers candidate records from the initial-data
// tree in the caller's category order. Dedup and truncation happen later
// in assemble.
func collectSearchResults(data json.RawMessage, kind Kind) []SearchResult {
	var out []SearchResult

	if kind == KindVideo || kind == KindAll {
		for _, key := range videoRendererKeys {
			for _, m := range extract.CollectObjects(data, key) {
				v := videoFromRenderer(m)
				out = append(out, SearchResult{Type: KindVideo, Video: &v})
			}
		}
	}
	if kind == KindPlaylist || kind == KindAll {
		for _, m := range extract.CollectObjects(data, "playlistRenderer") {
			p := playlistFromRenderer(m)
			out = append(out, SearchResult{Type: KindPlaylist, Playlist: &p})
		}
	}
	if kind == KindChannel || kind == KindAll {
		for _, m := range extract.CollectObjects(data, "channelRenderer") {
			c := channelFromRenderer(m)
			out = append(out, SearchResult{Type: KindChannel, Channel: &c})
		}
	}
	return out
}

// continuationToken pulls the first continuation token anywhere in the
// tree. Pages embed it under continuationCommand for the next batch of
// the same listing.
func continuationToken(data json.RawMessage) string {
	for _, m := range extract.CollectObjects(data, "continuationCommand") {
		if token, ok := m["token"].(string); ok && token != "" {
			return token
		}
	}
	return ""
}

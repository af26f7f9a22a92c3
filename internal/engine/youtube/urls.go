package youtube

import (
	"net/url"
	"strings"

	"github.com/ndongo78/nd-tube-api/internal/engine"
)

// Search result filter params (the "sp" query parameter).
const (
	filterVideos    = "EgIQAQ%3D%3D"
	filterChannels  = "EgIQAg%3D%3D"
	filterPlaylists = "EgIQAw%3D%3D"
)

// WatchURL returns the canonical watch URL for a video id, or "" when the
// id is empty — records lacking an id get no URL rather than a broken one.
func WatchURL(id string) string {
	if id == "" {
		return ""
	}
	return engine.Cfg.BaseURL + "/watch?v=" + url.QueryEscape(id)
}

// PlaylistURL returns the canonical playlist URL for a playlist id.
func PlaylistURL(id string) string {
	if id == "" {
		return ""
	}
	return engine.Cfg.BaseURL + "/playlist?list=" + url.QueryEscape(id)
}

// ChannelURL returns the canonical channel URL. canonicalBase, when the
// renderer provides one (e.g. "/@handle"), wins over the UC-id form.
func ChannelURL(id, canonicalBase string) string {
	if canonicalBase != "" {
		if strings.HasPrefix(canonicalBase, "http") {
			return canonicalBase
		}
		return engine.Cfg.BaseURL + canonicalBase
	}
	if id == "" {
		return ""
	}
	return engine.Cfg.BaseURL + "/channel/" + url.PathEscape(id)
}

// searchURL builds the results page URL for a query, filtered by kind.
// KindAll omits the filter so the page mixes renderer families.
func searchURL(query string, kind Kind) string {
	u := engine.Cfg.BaseURL + "/results?search_query=" + url.QueryEscape(query)
	switch kind {
	case KindVideo:
		u += "&sp=" + filterVideos
	case KindPlaylist:
		u += "&sp=" + filterPlaylists
	case KindChannel:
		u += "&sp=" + filterChannels
	}
	return u
}

// channelPageURL accepts either a UC… channel id or an @handle.
func channelPageURL(idOrHandle string) string {
	if strings.HasPrefix(idOrHandle, "@") {
		return engine.Cfg.BaseURL + "/" + url.PathEscape(idOrHandle) + "/videos"
	}
	return engine.Cfg.BaseURL + "/channel/" + url.PathEscape(idOrHandle) + "/videos"
}

// Package youtube maps the renderer nodes embedded in YouTube HTML pages
// into stable typed records and exposes the page-level operations built
// on them (search, video, playlist, channel lookups).
package youtube

// Kind selects which renderer families a search collects.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
	KindChannel  Kind = "channel"
	KindAll      Kind = "all"
)

// ParseKind normalizes a user-supplied kind string; empty and unknown
// values fall back to KindAll.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindVideo, KindPlaylist, KindChannel:
		return Kind(s)
	}
	return KindAll
}

// Thumbnail is one candidate image for a visual asset. Candidate lists
// are always sorted by width descending, so index 0 is the highest
// resolution available.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ChannelRef points at the channel that owns a video or playlist. A zero
// ChannelRef means the source renderer carried no owner information.
type ChannelRef struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Video is the canonical record for any video-shaped renderer
// (videoRenderer, compactVideoRenderer, gridVideoRenderer,
// playlistVideoRenderer).
type Video struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url,omitempty"`
	Channel     ChannelRef  `json:"channel"`
	Duration    string      `json:"duration,omitempty"`
	Views       *int64      `json:"views,omitempty"`
	ViewsText   string      `json:"viewsText,omitempty"`
	Published   string      `json:"published,omitempty"`
	Description string      `json:"description,omitempty"`
	IsLive      bool        `json:"isLive,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}

// Playlist is the canonical record for a playlistRenderer.
type Playlist struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	URL        string      `json:"url,omitempty"`
	Channel    ChannelRef  `json:"channel"`
	VideoCount *int64      `json:"videoCount,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

// Channel is the canonical record for a channelRenderer or a channel
// page's metadata renderer.
type Channel struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	URL         string      `json:"url,omitempty"`
	Handle      string      `json:"handle,omitempty"`
	Description string      `json:"description,omitempty"`
	Subscribers string      `json:"subscribers,omitempty"`
	VideoCount  *int64      `json:"videoCount,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}

// CaptionTrack is one subtitle track advertised by the player response.
type CaptionTrack struct {
	URL      string `json:"url"`
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
	Kind     string `json:"kind,omitempty"` // "asr" = auto-generated
}

// SearchResult is one entry of a (possibly mixed-kind) search. Exactly
// one of Video, Playlist, Channel is set, matching Type.
type SearchResult struct {
	Type     Kind      `json:"type"`
	Video    *Video    `json:"video,omitempty"`
	Playlist *Playlist `json:"playlist,omitempty"`
	Channel  *Channel  `json:"channel,omitempty"`
}

// SearchOutput is the result of one search page scrape.
type SearchOutput struct {
	Query        string         `json:"query"`
	Results      []SearchResult `json:"results"`
	Continuation string         `json:"continuation,omitempty"`
}

// VideoOutput is the result of one watch page scrape.
type VideoOutput struct {
	Video       Video          `json:"video"`
	Keywords    []string       `json:"keywords,omitempty"`
	Category    string         `json:"category,omitempty"`
	PublishDate string         `json:"publishDate,omitempty"`
	Captions    []CaptionTrack `json:"captions,omitempty"`
	Related     []Video        `json:"related,omitempty"`
}

// PlaylistOutput is the result of one playlist page scrape.
type PlaylistOutput struct {
	Playlist     Playlist `json:"playlist"`
	Items        []Video  `json:"items"`
	Continuation string   `json:"continuation,omitempty"`
}

// ChannelOutput is the result of one channel page scrape.
type ChannelOutput struct {
	Channel Channel `json:"channel"`
	Uploads []Video `json:"uploads,omitempty"`
}

// --- Tool input types ---

type SearchInput struct {
	Query string `json:"query" jsonschema:"Search query"`
	Type  string `json:"type,omitempty" jsonschema:"Result type: video, playlist, channel, all (default: all)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default: 10)"`
}

type VideoInput struct {
	ID string `json:"id" jsonschema:"Video id (the v= parameter of a watch URL)"`
}

type PlaylistInput struct {
	ID    string `json:"id" jsonschema:"Playlist id (the list= parameter of a playlist URL)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max items (default: 100)"`
}

type ChannelInput struct {
	ID    string `json:"id" jsonschema:"Channel id (UC…) or @handle"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max uploads (default: 30)"`
}

// PageConfig is the ytcfg object embedded alongside the data payloads.
// Callers that follow continuation tokens need the API key and client
// version from here.
type PageConfig struct {
	APIKey        string `json:"INNERTUBE_API_KEY"`
	ClientName    string `json:"INNERTUBE_CLIENT_NAME"`
	ClientVersion string `json:"INNERTUBE_CLIENT_VERSION"`
	VisitorData   string `json:"VISITOR_DATA"`
	HL            string `json:"HL"`
}

package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func video(id, title string) SearchResult {
	v := &Video{ID: id, Title: title}
	v.URL = WatchURL(id)
	return SearchResult{Type: KindVideo, Video: v}
}

func TestAssemble_DropsIdentityless(t *testing.T) {
	candidates := []SearchResult{
		{Type: KindVideo, Video: &Video{Title: "no id, no url"}},
		video("a", "A"),
	}
	out := assemble(candidates, 10)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Video.ID)
}

func TestAssemble_DedupeKeepsFirst(t *testing.T) {
	candidates := []SearchResult{
		video("a", "first occurrence"),
		video("b", "B"),
		video("a", "second occurrence"),
	}
	out := assemble(candidates, 10)
	require.Len(t, out, 2)
	assert.Equal(t, "first occurrence", out[0].Video.Title)
	assert.Equal(t, "b", out[1].Video.ID)
}

func TestAssemble_SameIDDifferentTypeIsNotADuplicate(t *testing.T) {
	p := &Playlist{ID: "a", Title: "P"}
	p.URL = PlaylistURL(p.ID)
	candidates := []SearchResult{
		video("a", "V"),
		{Type: KindPlaylist, Playlist: p},
	}
	out := assemble(candidates, 10)
	assert.Len(t, out, 2)
}

func TestAssemble_LimitPreservesOrder(t *testing.T) {
	var candidates []SearchResult
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		candidates = append(candidates, video(id, id))
	}
	out := assemble(candidates, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Video.ID)
	assert.Equal(t, "b", out[1].Video.ID)
	assert.Equal(t, "c", out[2].Video.ID)
}

func TestAssemble_URLOnlyIdentitySurvives(t *testing.T) {
	out := assemble([]SearchResult{
		{Type: KindVideo, Video: &Video{URL: "https://example.test/watch?v=x", Title: "T"}},
	}, 10)
	assert.Len(t, out, 1)
}

func TestAssembleVideos(t *testing.T) {
	videos := []Video{
		{ID: "a"},
		{Title: "identity-less"},
		{ID: "a", Title: "dup"},
		{ID: "b"},
		{ID: "c"},
	}
	out := assembleVideos(videos, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestAssembleCaptions(t *testing.T) {
	out := assembleCaptions([]CaptionTrack{
		{URL: "u1", Language: "en"},
		{Language: "de"}, // no URL
		{URL: "u1", Language: "en-dup"},
		{URL: "u2", Language: "fr"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "en", out[0].Language)
	assert.Equal(t, "fr", out[1].Language)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindVideo, ParseKind("video"))
	assert.Equal(t, KindPlaylist, ParseKind("playlist"))
	assert.Equal(t, KindChannel, ParseKind("channel"))
	assert.Equal(t, KindAll, ParseKind(""))
	assert.Equal(t, KindAll, ParseKind("bogus"))
}

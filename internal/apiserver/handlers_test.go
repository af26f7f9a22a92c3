package apiserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndongo78/nd-tube-api/internal/engine"
	"github.com/ndongo78/nd-tube-api/internal/engine/history"
	"github.com/ndongo78/nd-tube-api/internal/engine/youtube"
)

// setup points the engine at a fake upstream and the history log at a
// throwaway database, then returns the REST router under test.
func setup(t *testing.T, pages map[string]string) http.Handler {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(doc))
	}))
	t.Cleanup(upstream.Close)
	t.Cleanup(func() { engine.Init(engine.Config{}) })
	engine.Init(engine.Config{BaseURL: upstream.URL, HTTPClient: upstream.Client()})
	history.SetPath(filepath.Join(t.TempDir(), "history.db"))
	return NewRouter()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSearchRoute(t *testing.T) {
	router := setup(t, map[string]string{
		"/results": `<html><script>var ytInitialData = {"contents":{"videoRenderer":{"videoId":"abc123","title":{"simpleText":"Hello"}}}};</script></html>`,
	})

	rec := get(t, router, "/api/search?q=hello&type=video")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out youtube.SearchOutput
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Video.ID != "abc123" {
		t.Fatalf("results = %+v", out.Results)
	}
}

func TestSearchRoute_MissingQuery(t *testing.T) {
	router := setup(t, nil)
	if rec := get(t, router, "/api/search"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestVideoRoute_UpstreamMissingPayload(t *testing.T) {
	router := setup(t, map[string]string{
		"/watch": `<html><body>nothing embedded here</body></html>`,
	})
	rec := get(t, router, "/api/videos/gone123")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHistoryRoute(t *testing.T) {
	router := setup(t, map[string]string{
		"/results": `<html><script>var ytInitialData = {"contents":{"videoRenderer":{"videoId":"h1","title":{"simpleText":"T"}}}};</script></html>`,
	})

	if rec := get(t, router, "/api/search?q=logged"); rec.Code != http.StatusOK {
		t.Fatalf("search status = %d", rec.Code)
	}

	rec := get(t, router, "/api/history")
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	var out struct {
		Entries []history.Entry `json:"entries"`
		Total   int             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// The history database is shared across the test binary, so only
	// the newest entry is ours for sure.
	if out.Total == 0 || out.Entries[0].Operation != "search" || out.Entries[0].Subject != "logged" {
		t.Fatalf("entries = %+v", out.Entries)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router := setup(t, nil)
	if rec := get(t, router, "/healthz"); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d", rec.Code)
	}
	rec := get(t, router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Errorf("metrics = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "search_requests") {
		t.Errorf("metrics body = %s", rec.Body.String())
	}
}

package youtube

import (
	"errors"
	"testing"

	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

const cfgObject = `{"INNERTUBE_API_KEY":"AIzaTest","INNERTUBE_CLIENT_NAME":"WEB","INNERTUBE_CLIENT_VERSION":"2.20240101.00.00","VISITOR_DATA":"Cgt0ZXN0","HL":"en"}`

func TestPageConfigFor(t *testing.T) {
	doc := `<html><head><script>ytcfg.set(` + cfgObject + `);</script></head></html>`

	pc, err := PageConfigFor(doc)
	if err != nil {
		t.Fatalf("PageConfigFor: %v", err)
	}
	if pc.APIKey != "AIzaTest" {
		t.Errorf("APIKey = %q", pc.APIKey)
	}
	if pc.ClientName != "WEB" || pc.ClientVersion != "2.20240101.00.00" {
		t.Errorf("client = %q/%q", pc.ClientName, pc.ClientVersion)
	}
	if pc.VisitorData != "Cgt0ZXN0" || pc.HL != "en" {
		t.Errorf("visitor/hl = %q/%q", pc.VisitorData, pc.HL)
	}
}

func TestPageConfigFor_ScriptFallback(t *testing.T) {
	// The marker also appears in markup outside any script, where the
	// whole-document scan finds no parseable object after it. The
	// per-script pass must still locate the real call.
	doc := `<html><body><p>how ytcfg.set( {broken works</p>` +
		`<script>var a = 1;</script>` +
		`<script>ytcfg.set(` + cfgObject + `);ytcfg.set("EXPERIMENT_FLAGS", {});</script>` +
		`</body></html>`

	pc, err := PageConfigFor(doc)
	if err != nil {
		t.Fatalf("PageConfigFor: %v", err)
	}
	if pc.APIKey != "AIzaTest" {
		t.Errorf("APIKey = %q", pc.APIKey)
	}
}

func TestPageConfigFor_Missing(t *testing.T) {
	for _, doc := range []string{
		"",
		"<html><script>var x = {};</script></html>",
		`<html><script>ytcfg.set("just", "strings");</script></html>`,
	} {
		if _, err := PageConfigFor(doc); !errors.Is(err, extract.ErrPayloadNotFound) {
			t.Errorf("doc %q: err = %v, want ErrPayloadNotFound", doc, err)
		}
	}
}

package youtube

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"

	"github.com/ndongo78/nd-tube-api/internal/engine/extract"
)

// PageConfigFor extracts the ytcfg object from a document. The fast path
// is a whole-document marker scan; when that fails (the marker string can
// appear inside unrelated inline JS before the real call), each script
// tag's text is scanned individually. A missing config is reported with
// the same terminal condition as the data payloads.
func PageConfigFor(doc string) (*PageConfig, error) {
	raw, err := extract.Payload(doc, extract.PayloadConfig)
	if err != nil {
		raw, err = configFromScripts(doc)
	}
	if err != nil {
		return nil, err
	}
	var pc PageConfig
	if err := json.Unmarshal(raw, &pc); err != nil {
		return nil, extract.ErrPayloadNotFound
	}
	return &pc, nil
}

// configFromScripts tokenizes the document and scans only <script> text
// nodes for the ytcfg.set call, so markup outside scripts cannot produce
// a false match.
func configFromScripts(doc string) (json.RawMessage, error) {
	tokenizer := html.NewTokenizer(strings.NewReader(doc))
	inScript := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return nil, extract.ErrPayloadNotFound
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inScript = string(name) == "script"
		case html.TextToken:
			if !inScript {
				continue
			}
			if raw, err := extract.Payload(string(tokenizer.Text()), extract.PayloadConfig); err == nil {
				return raw, nil
			}
		}
	}
}

// Package extract locates and decodes the JSON payloads YouTube embeds in
// rendered HTML pages (ytInitialData, ytInitialPlayerResponse, ytcfg) and
// provides generic helpers for walking the resulting untyped trees.
package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrPayloadNotFound is returned whenever an embedded payload cannot be
// recovered from a document: the marker is absent, no object follows it,
// the brace scan runs off the end of the input, or the balanced span is
// not valid JSON. Callers cannot (and should not) distinguish these cases.
var ErrPayloadNotFound = errors.New("embedded payload not found")

// ScanObject returns the JSON object immediately following the first
// occurrence of marker in doc. Only the first occurrence is considered:
// duplicated inline scripts re-assigning the same payload are ignored.
//
// The scan tracks string and escape state so that braces inside string
// literals (including escaped quotes such as `"a } b \" c"`) do not
// unbalance the depth count. The returned slice is the minimal balanced
// span starting at the first '{' after the marker, verified to be valid
// JSON before it is returned.
func ScanObject(doc, marker string) (json.RawMessage, error) {
	at := strings.Index(doc, marker)
	if at < 0 {
		return nil, ErrPayloadNotFound
	}
	start := strings.IndexByte(doc[at+len(marker):], '{')
	if start < 0 {
		return nil, ErrPayloadNotFound
	}
	start += at + len(marker)

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(doc); i++ {
		c := doc[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				span := doc[start : i+1]
				if !json.Valid([]byte(span)) {
					return nil, ErrPayloadNotFound
				}
				return json.RawMessage(span), nil
			}
		}
	}
	return nil, ErrPayloadNotFound
}

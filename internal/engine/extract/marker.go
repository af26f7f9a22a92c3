package extract

import "encoding/json"

// Payload names understood by Payload.
const (
	PayloadInitialData    = "ytInitialData"
	PayloadPlayerResponse = "ytInitialPlayerResponse"
	PayloadConfig         = "ytcfg"
)

// payloadMarkers maps a logical payload name to the marker spellings seen
// in the wild, in the order they are worth trying. The spellings are
// mutually exclusive in practice, so order only affects how fast the
// common case resolves.
var payloadMarkers = map[string][]string{
	PayloadInitialData: {
		"var ytInitialData = ",
		`window["ytInitialData"] = `,
		"ytInitialData = ",
	},
	PayloadPlayerResponse: {
		"var ytInitialPlayerResponse = ",
		`window["ytInitialPlayerResponse"] = `,
		"ytInitialPlayerResponse = ",
	},
	PayloadConfig: {
		"ytcfg.set(",
	},
}

// Payload extracts the named payload from doc, trying each known marker
// spelling in turn. Unknown names and exhausted marker lists both report
// ErrPayloadNotFound.
func Payload(doc, name string) (json.RawMessage, error) {
	for _, marker := range payloadMarkers[name] {
		if raw, err := ScanObject(doc, marker); err == nil {
			return raw, nil
		}
	}
	return nil, ErrPayloadNotFound
}

package extract

import (
	"bytes"
	"encoding/json"
	"io"
)

// Collect returns every value stored under the exact key name anywhere in
// the JSON document data, at any depth, including inside arrays and inside
// other matches' subtrees. Results appear in document order, which for a
// tree is pre-order: a parent match precedes matches found inside it.
//
// The walk is driven by the decoder's token stream rather than a decoded
// map, for two reasons: object keys are visited in source order (a hash
// map would shuffle siblings), and arbitrarily deep input cannot blow the
// call stack — nesting is tracked in an explicit frame slice.
func Collect(data []byte, key string) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type frame struct {
		object  bool
		keyNext bool
	}
	// span marks the byte range of one matched value. Container values are
	// opened here and closed when the stack returns to their height; scalar
	// values close immediately.
	type span struct {
		start  int64
		end    int64
		height int
	}

	var stack []frame
	var spans []span
	var open []int       // indices of container spans awaiting their close, innermost last
	pending := int64(-1) // start offset of a matched value whose first token is next

	closeScalar := func(end int64) {
		if pending >= 0 {
			spans = append(spans, span{start: pending, end: end})
			pending = -1
		}
	}
	markKeyNext := func() {
		if top := len(stack) - 1; top >= 0 && stack[top].object {
			stack[top].keyNext = true
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				if pending >= 0 {
					spans = append(spans, span{start: pending, end: -1, height: len(stack)})
					open = append(open, len(spans)-1)
					pending = -1
				}
				stack = append(stack, frame{object: t == '{', keyNext: t == '{'})
			case '}', ']':
				stack = stack[:len(stack)-1]
				markKeyNext()
				if n := len(open); n > 0 && spans[open[n-1]].height == len(stack) {
					spans[open[n-1]].end = dec.InputOffset()
					open = open[:n-1]
				}
			}
		case string:
			if top := len(stack) - 1; top >= 0 && stack[top].object && stack[top].keyNext {
				stack[top].keyNext = false
				if t == key {
					pending = valueStart(data, dec.InputOffset())
				}
				continue
			}
			closeScalar(dec.InputOffset())
			markKeyNext()
		default: // json.Number, bool, nil
			closeScalar(dec.InputOffset())
			markKeyNext()
		}
	}

	out := make([]json.RawMessage, 0, len(spans))
	for _, s := range spans {
		if s.end > s.start {
			out = append(out, json.RawMessage(bytes.TrimSpace(data[s.start:s.end])))
		}
	}
	return out, nil
}

// CollectObjects decodes every object-typed match for key into a generic
// map, silently skipping matches of any other shape.
func CollectObjects(data []byte, key string) []map[string]any {
	raws, err := Collect(data, key)
	if err != nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raws))
	for _, raw := range raws {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err == nil && m != nil {
			out = append(out, m)
		}
	}
	return out
}

// valueStart advances from the offset just past an object key, over the
// colon and any whitespace, to the first byte of the key's value.
func valueStart(data []byte, from int64) int64 {
	i := from
	for i < int64(len(data)) {
		switch data[i] {
		case ' ', '\t', '\r', '\n', ':':
			i++
		default:
			return i
		}
	}
	return i
}

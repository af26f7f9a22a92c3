package extract

import "strings"

// YouTube encodes display text three ways depending on page vintage and
// renderer type: a bare string, a {"simpleText": ...} wrapper, or a
// {"runs": [{"text": ...}, ...]} fragment list. Text flattens all three.
// Absent or unrecognized input yields "", never a failure: the upstream
// document's shape is not contractually stable, so a missing field must
// not abort processing of the rest of the tree.
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["simpleText"].(string); ok {
			return s
		}
		if runs, ok := t["runs"].([]any); ok {
			var b strings.Builder
			for _, run := range runs {
				if m, ok := run.(map[string]any); ok {
					if s, ok := m["text"].(string); ok {
						b.WriteString(s)
					}
				}
			}
			return b.String()
		}
	}
	return ""
}

// Count normalizes a text-encoded count such as "1,234 vues" to its
// numeric value by stripping every non-digit rune. A count with no digits
// at all returns nil, which is distinct from an explicit zero.
func Count(v any) *int64 {
	var n int64
	seen := false
	for _, r := range Text(v) {
		if r < '0' || r > '9' {
			continue
		}
		n = n*10 + int64(r-'0')
		seen = true
	}
	if !seen {
		return nil
	}
	return &n
}

// At walks v along a path of string (object key) and int (array index)
// steps, returning nil as soon as any step does not fit the value's
// actual shape.
func At(v any, path ...any) any {
	cur := v
	for _, step := range path {
		switch s := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[s]
		case int:
			a, ok := cur.([]any)
			if !ok || s < 0 || s >= len(a) {
				return nil
			}
			cur = a[s]
		default:
			return nil
		}
	}
	return cur
}

// FirstRun returns the first fragment of a runs-encoded text field, or
// nil when the field is absent or has no runs. Renderer builders use it
// to resolve owner references: the first run of a byline carries the
// owning channel's navigation endpoint.
func FirstRun(v any) map[string]any {
	m, _ := At(v, "runs", 0).(map[string]any)
	return m
}

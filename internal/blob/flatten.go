package blob

import (
	"fmt"
	"strings"
)

// Flatten walks the wrapped value into "key = value" lines for display.
//
// Within a mapping, scalar leaves come first and nested containers follow.
// A sequence at the top is passed through element by element.
func (b Blob) Flatten(prefix string) []string {
	return flatten(prefix, b.value)
}

// Show joins Flatten's output with newlines.
func (b Blob) Show(prefix string) string {
	return strings.Join(b.Flatten(prefix), "\n")
}

func flatten(prefix string, v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case map[string]any:
		keys, _ := Blob{value: t}.Keys()
		var result, more []string
		for _, key := range keys {
			switch child := t[key].(type) {
			case map[string]any:
				more = append(more, flatten(prefix+key+".", child)...)
			case []any:
				for _, item := range child {
					more = append(more, flatten(prefix, map[string]any{key: item})...)
				}
			default:
				result = append(result, fmt.Sprintf("%s%s = %s", prefix, key, formatScalar(child)))
			}
		}
		return append(result, more...)
	default:
		return nil
	}
}

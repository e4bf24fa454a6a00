// Package blob wraps decoded JSON values and resolves pointer paths into them.
package blob

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-openapi/jsonpointer"
)

// ErrPathNotFound is matched by every PathNotFoundError.
var ErrPathNotFound = errors.New("path not found")

// PathNotFoundError reports a path that does not resolve.
type PathNotFoundError struct {
	Path string
	Err  error
}

func (e *PathNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("couldn't parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("couldn't parse %s", e.Path)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// Blob is a read-only view of a decoded JSON value. It never owns or
// modifies the value it wraps.
type Blob struct {
	value any
}

// New wraps a value produced by encoding/json.
func New(v any) Blob {
	return Blob{value: v}
}

// Value returns the wrapped value.
func (b Blob) Value() any {
	return b.value
}

// IsNull reports whether the wrapped value is JSON null (or nothing at all).
func (b Blob) IsNull() bool {
	return b.value == nil
}

// Path resolves path relative to the wrapped value.
func (b Blob) Path(path string) (Blob, error) {
	cur := b.value
	for _, seg := range Split(path) {
		if cur == nil {
			return Blob{}, &PathNotFoundError{Path: path, Err: fmt.Errorf("null has no member %q", seg)}
		}
		if _, isList := cur.([]any); isList && !isArrayIndex(seg) {
			return Blob{}, &PathNotFoundError{Path: path, Err: fmt.Errorf("%q is not an array index", seg)}
		}
		next, _, err := jsonpointer.GetForToken(cur, seg)
		if err != nil {
			return Blob{}, &PathNotFoundError{Path: path, Err: err}
		}
		cur = next
	}
	return Blob{value: cur}, nil
}

// String resolves path and returns it as a string.
func (b Blob) String(path string) (string, error) {
	sub, err := b.Path(path)
	if err != nil {
		return "", err
	}
	s, ok := sub.value.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s", path, kindOf(sub.value))
	}
	return s, nil
}

// Strings resolves path and returns it as a list of strings.
func (b Blob) Strings(path string) ([]string, error) {
	sub, err := b.Path(path)
	if err != nil {
		return nil, err
	}
	items, ok := sub.value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected list, got %s", path, kindOf(sub.value))
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s/%d: expected string, got %s", path, i, kindOf(item))
		}
		out = append(out, s)
	}
	return out, nil
}

// List returns the wrapped sequence as blobs, or false if it is not one.
func (b Blob) List() ([]Blob, bool) {
	items, ok := b.value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]Blob, len(items))
	for i, item := range items {
		out[i] = Blob{value: item}
	}
	return out, true
}

// Keys returns the sorted keys of the wrapped mapping, or false if it is not one.
func (b Blob) Keys() ([]string, bool) {
	m, ok := b.value.(map[string]any)
	if !ok {
		return nil, false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, true
}

// isArrayIndex accepts "0" or a decimal number without sign or leading zeros.
func isArrayIndex(tok string) bool {
	if tok == "" || (tok[0] == '0' && len(tok) > 1) {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// formatScalar prints leaves the way they appear in the document.
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

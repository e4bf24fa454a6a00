package blob

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) Blob {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return New(v)
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"web-pool", "web-pool"},
		{"a/b", "a~1b"},
		{"a~b", "a~0b"},
		{"~1", "~01"},
		{"/~", "~1~0"},
		{" lead", "/ lead"},
		{"two words", "two/ words"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"", nil},
		{"/", []string{""}},
		{"/pools", []string{"pools"}},
		{"pools/web", []string{"pools", "web"}},
		{"/a~1b/c~0d", []string{"a/b", "c~d"}},
		{"// x", []string{" x"}},
		{"/two/ words/next", []string{"two words", "next"}},
		{"/a~2", []string{"a~2"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.path))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	names := []string{"plain", "a/b", "a~b", "~1", " lead", "two words", "mix ~/ all", "trail ", " ", ""}

	doc := map[string]any{}
	for i, name := range names {
		doc[name] = float64(i)
	}
	b := New(doc)

	for i, name := range names {
		t.Run(name, func(t *testing.T) {
			got, err := b.Path("/" + Escape(name))
			require.NoError(t, err)
			assert.Equal(t, float64(i), got.Value())
			assert.Equal(t, doc[name], got.Value())
		})
	}
}

func TestJoin(t *testing.T) {
	b := decode(t, `{"servers": {"a b": {"c/d": "x"}}}`)

	got, err := b.String(Join("servers", "a b", "c/d"))
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestPath(t *testing.T) {
	b := decode(t, `{
		"pools": {"web": {"status": "ok", "nodes": [{"node": "10.0.0.1:80"}, {"node": "10.0.0.2:80"}]}},
		"empty": null
	}`)

	root, err := b.Path("")
	require.NoError(t, err)
	assert.Equal(t, b.Value(), root.Value())

	status, err := b.String("/pools/web/status")
	require.NoError(t, err)
	assert.Equal(t, "ok", status)

	node, err := b.String("/pools/web/nodes/1/node")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:80", node)

	empty, err := b.Path("/empty")
	require.NoError(t, err)
	assert.True(t, empty.IsNull())
}

func TestPathNotFound(t *testing.T) {
	b := decode(t, `{"pools": {"web": {"status": "ok", "nodes": [1]}}, "empty": null}`)

	paths := []string{
		"/missing",
		"/pools/db",
		"/pools/web/nodes/5",
		"/pools/web/nodes/x",
		"/pools/web/nodes/+0",
		"/pools/web/nodes/00",
		"/pools/web/nodes/-0",
		"/pools/web/status/deeper",
		"/empty/child",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			_, err := b.Path(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPathNotFound))

			var pnf *PathNotFoundError
			require.True(t, errors.As(err, &pnf))
			assert.Equal(t, path, pnf.Path)
		})
	}
}

func TestPathArrayIndexMustBeCanonical(t *testing.T) {
	b := decode(t, `{"list": ["a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"]}`)

	for path, expected := range map[string]string{
		"/list/0":  "a",
		"/list/1":  "b",
		"/list/10": "k",
	} {
		got, err := b.String(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, got)
	}

	for _, path := range []string{"/list/01", "/list/+1", "/list/1.0", "/list/"} {
		_, err := b.Path(path)
		assert.True(t, errors.Is(err, ErrPathNotFound), path)
	}
}

func TestPathDoesNotMutate(t *testing.T) {
	b := decode(t, `{"a": {"b": [1, 2]}}`)
	before, err := json.Marshal(b.Value())
	require.NoError(t, err)

	_, _ = b.Path("/a/b/0")
	_, _ = b.Path("/a/missing")

	after, err := json.Marshal(b.Value())
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestStrings(t *testing.T) {
	b := decode(t, `{"ips": ["1.2.3.4", "5.6.7.8"], "bad": ["x", 1], "scalar": "x"}`)

	ips, err := b.Strings("/ips")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, ips)

	_, err = b.Strings("/bad")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrPathNotFound))

	_, err = b.Strings("/scalar")
	assert.Error(t, err)
}

func TestKeysAndList(t *testing.T) {
	b := decode(t, `{"b": 1, "a": 2, "list": [1, 2]}`)

	keys, ok := b.Keys()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "list"}, keys)

	list, err := b.Path("/list")
	require.NoError(t, err)
	items, ok := list.List()
	require.True(t, ok)
	assert.Len(t, items, 2)

	_, ok = list.Keys()
	assert.False(t, ok)
}

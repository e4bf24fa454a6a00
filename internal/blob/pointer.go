package blob

import "strings"

// segmentEscaper rewrites every rune on its own, so "~" never turns into a
// separator and "/" never picks up a second escape.
var segmentEscaper = strings.NewReplacer(
	"~", "~0",
	"/", "~1",
	" ", "/ ",
)

// Escape converts a raw key into a token that can be spliced into a path.
// Entity names in a snapshot may contain "/", "~" or spaces.
func Escape(raw string) string {
	return segmentEscaper.Replace(raw)
}

// Join builds a path from raw keys, escaping each of them.
func Join(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		b.WriteByte('/')
		b.WriteString(Escape(k))
	}
	return b.String()
}

// Split decodes a path into its raw segments.
//
// One leading "/" is optional. After it, "/ " is an escaped space inside the
// current segment, any other "/" starts a new segment, and "~0" / "~1" decode
// to "~" and "/". The empty path is the root and has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	path = strings.TrimPrefix(path, "/")

	segments := []string{}
	var cur strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '/' && i+1 < len(path) && path[i+1] == ' ':
			cur.WriteByte(' ')
			i++
		case c == '/':
			segments = append(segments, cur.String())
			cur.Reset()
		case c == '~' && i+1 < len(path) && path[i+1] == '0':
			cur.WriteByte('~')
			i++
		case c == '~' && i+1 < len(path) && path[i+1] == '1':
			cur.WriteByte('/')
			i++
		default:
			cur.WriteByte(c)
		}
	}
	return append(segments, cur.String())
}

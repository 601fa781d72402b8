package browser

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// tags whose text never renders
var invisible = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// VisibleText strips markup from an HTML document and returns its text with
// whitespace collapsed to single spaces.
func VisibleText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var b strings.Builder
	hidden := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return CollapseWhitespace(b.String()), nil
			}
			return "", z.Err()
		case html.StartTagToken:
			if name, _ := z.TagName(); isInvisible(name) {
				hidden++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isInvisible(name) && hidden > 0 {
				hidden--
			}
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isInvisible(name []byte) bool {
	_, ok := invisible[string(name)]
	return ok
}

// CollapseWhitespace trims s and joins its fields with single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate keeps the first n characters (runes) of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

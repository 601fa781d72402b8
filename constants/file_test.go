package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySource(t *testing.T) {
	tests := []struct {
		uri  string
		want SourceKind
	}{
		{"https://x.com/menu.pdf", PdfDocument},
		{"https://x.com/hours.jpg", Image},
		{"https://x.com/specials/", WebPage},
		{"https://X.COM/MENU.PDF", PdfDocument},
		{"https://x.com/board.JPEG", Image},
		{"https://x.com/board.png?v=3", Image},
		{"https://x.com/board.webp#top", Image},
		{"https://x.com/menu.pdf?download=1", PdfDocument},
		{"https://www.centomadison.com/menus/#happy-hour", WebPage},
		{"https://x.com/pdf-menu", WebPage},
		{"https://x.com/", WebPage},
		{"menu.Pdf", PdfDocument},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySource(tt.uri))
		})
	}
}

func TestMapExtToKind(t *testing.T) {
	assert.Equal(t, Image, MapExtToKind(".PNG"))
	assert.Equal(t, Image, MapExtToKind("jpg"))
	assert.Equal(t, PdfDocument, MapExtToKind(".pdf"))
	assert.Equal(t, WebPage, MapExtToKind(".html"))
	assert.Equal(t, WebPage, MapExtToKind(""))
}

func TestParseSourceKind(t *testing.T) {
	for in, want := range map[string]SourceKind{
		"web":   WebPage,
		"HTML":  WebPage,
		" pdf ": PdfDocument,
		"Image": Image,
		"img":   Image,
	} {
		got, ok := ParseSourceKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseSourceKind("video")
	assert.False(t, ok)
}

func TestSourceStatusTerminal(t *testing.T) {
	assert.True(t, SourceInserted.Terminal())
	assert.True(t, SourceSkipped.Terminal())
	for _, s := range []SourceStatus{SourcePending, SourceNormalized, SourceExtracted, SourceParsed} {
		assert.False(t, s.Terminal(), s)
	}
}

package constants

import (
	"net/url"
	"path"
	"strings"
)

// SourceKind is the ingestion strategy for a venue source.
type SourceKind string

const (
	WebPage     SourceKind = "WEB_PAGE"
	PdfDocument SourceKind = "PDF"
	Image       SourceKind = "IMAGE"
)

// ImageExtensions holds the suffixes fetched and sent to the vision model as-is.
var ImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a normalized extension to a source kind.
// Images win over PDF; anything else is rendered as a web page.
func MapExtToKind(ext string) SourceKind {
	ext = NormalizeExt(ext)
	if _, ok := ImageExtensions[ext]; ok {
		return Image
	}
	if ext == "pdf" {
		return PdfDocument
	}
	return WebPage
}

// ClassifySource derives the source kind from a URI suffix. Query strings and
// fragments are ignored, matching is case-insensitive.
func ClassifySource(uri string) SourceKind {
	p := uri
	if u, err := url.Parse(strings.TrimSpace(uri)); err == nil && u.Path != "" {
		p = u.Path
	}
	return MapExtToKind(path.Ext(p))
}

// ParseSourceKind accepts an explicit override such as "pdf", "image" or "web".
func ParseSourceKind(s string) (SourceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "web", "webpage", "web_page", "html":
		return WebPage, true
	case "pdf", "pdfdocument", "pdf_document":
		return PdfDocument, true
	case "image", "img":
		return Image, true
	}
	return "", false
}

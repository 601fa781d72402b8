package entity

import (
	"encoding/base64"
	"strings"

	"github.com/joseph-ayodele/specials-tracker/constants"
)

// Venue is one configured business, keyed by Name in the store.
type Venue struct {
	Name    string   `json:"name" yaml:"name"`
	Sources []Source `json:"sources" yaml:"sources"`
}

// Source is one URI belonging to a venue. Kind is an optional override;
// when empty the kind is derived from the URI suffix.
type Source struct {
	URL  string               `json:"url" yaml:"url"`
	Kind constants.SourceKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// ResolveKind returns the override if set, else the suffix classification.
func (s Source) ResolveKind() constants.SourceKind {
	if s.Kind != "" {
		return s.Kind
	}
	return constants.ClassifySource(s.URL)
}

// InputKind tags the NormalizedInput variant.
type InputKind int

const (
	InputText InputKind = iota
	InputImage
)

func (k InputKind) String() string {
	if k == InputImage {
		return "image"
	}
	return "text"
}

// NormalizedInput is the model-consumable form of a source: either plain text
// (Content) or an inlined image (MIMEType + Base64Payload).
type NormalizedInput struct {
	Kind          InputKind
	Content       string
	MIMEType      string
	Base64Payload string
}

// TextInput wraps extracted text.
func TextInput(content string) NormalizedInput {
	return NormalizedInput{Kind: InputText, Content: content}
}

// ImageInput base64-encodes raw image bytes.
func ImageInput(mimeType string, raw []byte) NormalizedInput {
	return NormalizedInput{
		Kind:          InputImage,
		MIMEType:      mimeType,
		Base64Payload: base64.StdEncoding.EncodeToString(raw),
	}
}

// DataURL renders an image input as data:<mime>;base64,<payload>.
func (n NormalizedInput) DataURL() string {
	if n.Kind != InputImage {
		return ""
	}
	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(n.MIMEType)
	b.WriteString(";base64,")
	b.WriteString(n.Base64Payload)
	return b.String()
}

// Size is the payload length used in logs.
func (n NormalizedInput) Size() int {
	if n.Kind == InputImage {
		return len(n.Base64Payload)
	}
	return len(n.Content)
}

// SpecialRecord is one day's promotion. BarName and SourceURL are stamped by
// the pipeline after extraction.
type SpecialRecord struct {
	DayOfWeek      string `json:"day_of_week"`
	SpecialDetails string `json:"special_details"`
	Price          string `json:"price"`
	BarName        string `json:"bar_name,omitempty"`
	SourceURL      string `json:"source_url,omitempty"`
}

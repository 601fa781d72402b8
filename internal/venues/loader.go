package venues

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

// File is the YAML/JSON document shape.
type File struct {
	Venues []VenueSpec `json:"venues" yaml:"venues"`
}

// VenueSpec accepts either plain URLs or sources with an explicit kind.
type VenueSpec struct {
	Name    string       `json:"name" yaml:"name"`
	URLs    []string     `json:"urls,omitempty" yaml:"urls,omitempty"`
	Sources []SourceSpec `json:"sources,omitempty" yaml:"sources,omitempty"`
}

type SourceSpec struct {
	URL  string `json:"url" yaml:"url"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// LoadFromPath reads a venue list. Format is picked by extension:
// .yaml/.yml, .json, or .xlsx.
func LoadFromPath(path string) ([]entity.Venue, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return LoadXLSX(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read venues")
	}
	return Load(data, ext)
}

// Load parses venues from bytes. ext is a format hint; empty = detect from content.
func Load(data []byte, ext string) ([]entity.Venue, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var f File
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse venues json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse venues yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported venues format %q", ext)
	}
	return Build(f.Venues)
}

// Build validates specs and converts them to venues, keeping file order.
func Build(specs []VenueSpec) ([]entity.Venue, error) {
	if len(specs) == 0 {
		return nil, common.NewAppError("INVALID_INPUT", "venue list is empty", common.ErrInvalidInput)
	}
	out := make([]entity.Venue, 0, len(specs))
	for i, s := range specs {
		v, err := s.toVenue(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s VenueSpec) toVenue(idx int) (entity.Venue, error) {
	prefix := fmt.Sprintf("venues[%d]", idx)
	v := common.NewValidator()
	v.Field(prefix+".name", s.Name, common.Required, common.MaxLength(200))

	sources := make([]entity.Source, 0, len(s.URLs)+len(s.Sources))
	for j, u := range s.URLs {
		v.Field(fmt.Sprintf("%s.urls[%d]", prefix, j), u, common.HTTPURL)
		sources = append(sources, entity.Source{URL: strings.TrimSpace(u)})
	}
	for j, src := range s.Sources {
		field := fmt.Sprintf("%s.sources[%d]", prefix, j)
		v.Field(field+".url", src.URL, common.HTTPURL)
		es := entity.Source{URL: strings.TrimSpace(src.URL)}
		if strings.TrimSpace(src.Kind) != "" {
			kind, ok := constants.ParseSourceKind(src.Kind)
			if !ok {
				v.Field(field+".kind", src.Kind, common.OneOf("web", "pdf", "image"))
			}
			es.Kind = kind
		}
		sources = append(sources, es)
	}
	if len(sources) == 0 {
		v.Field(prefix+".urls", s.URLs, common.Required)
	}

	if err := common.ValidateAndReturnError(v); err != nil {
		return entity.Venue{}, err
	}
	return entity.Venue{Name: strings.TrimSpace(s.Name), Sources: sources}, nil
}

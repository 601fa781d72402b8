package normalize

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
	"github.com/joseph-ayodele/specials-tracker/internal/fetch"
)

const defaultImageMIME = "image/jpeg"

// Fetcher downloads raw bytes.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Response, error)
}

// Renderer returns the visible text of a fully rendered web page.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// PDFExtractor returns the concatenated page text of a PDF.
type PDFExtractor interface {
	Text(ctx context.Context, data []byte) (string, error)
}

// Normalizer turns a source into model input, dispatching on its kind.
type Normalizer struct {
	fetcher  Fetcher
	renderer Renderer
	pdf      PDFExtractor
	logger   *slog.Logger
}

func NewNormalizer(fetcher Fetcher, renderer Renderer, pdf PDFExtractor, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{fetcher: fetcher, renderer: renderer, pdf: pdf, logger: logger}
}

// Normalize returns a text or image input for src. Every error is a *common.IngestionFailure.
func (n *Normalizer) Normalize(ctx context.Context, src entity.Source) (entity.NormalizedInput, error) {
	start := time.Now()
	kind := src.ResolveKind()

	var (
		in  entity.NormalizedInput
		err error
	)
	switch kind {
	case constants.Image:
		in, err = n.image(ctx, src.URL)
	case constants.PdfDocument:
		in, err = n.document(ctx, src.URL)
	case constants.WebPage:
		in, err = n.webPage(ctx, src.URL)
	default:
		err = fmt.Errorf("unsupported source kind %q", kind)
	}
	if err != nil {
		n.logger.Warn("normalize.failed", "venue", common.VenueFromContext(ctx), "url", src.URL, "kind", kind, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return entity.NormalizedInput{}, &common.IngestionFailure{Source: src.URL, Cause: err}
	}

	n.logger.Info("normalize.ok",
		"venue", common.VenueFromContext(ctx),
		"url", src.URL,
		"kind", kind,
		"input", in.Kind.String(),
		"size", in.Size(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return in, nil
}

func (n *Normalizer) image(ctx context.Context, rawURL string) (entity.NormalizedInput, error) {
	resp, err := n.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return entity.NormalizedInput{}, err
	}
	if len(resp.Body) == 0 {
		return entity.NormalizedInput{}, fmt.Errorf("empty image body")
	}
	return entity.ImageInput(imageMIME(resp.ContentType), resp.Body), nil
}

func (n *Normalizer) document(ctx context.Context, rawURL string) (entity.NormalizedInput, error) {
	resp, err := n.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return entity.NormalizedInput{}, err
	}
	text, err := n.pdf.Text(ctx, resp.Body)
	if err != nil {
		return entity.NormalizedInput{}, fmt.Errorf("parse pdf: %w", err)
	}
	return entity.TextInput(CleanText(text)), nil
}

func (n *Normalizer) webPage(ctx context.Context, rawURL string) (entity.NormalizedInput, error) {
	text, err := n.renderer.Render(ctx, rawURL)
	if err != nil {
		return entity.NormalizedInput{}, err
	}
	return entity.TextInput(text), nil
}

// imageMIME returns the declared image/* content type without parameters,
// or image/jpeg when none is declared.
func imageMIME(contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && strings.HasPrefix(mt, "image/") {
		return mt
	}
	return defaultImageMIME
}

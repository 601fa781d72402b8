package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor pulls text out of PDF bytes with MuPDF.
type FitzExtractor struct {
	logger *slog.Logger
}

func NewFitzExtractor(logger *slog.Logger) *FitzExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FitzExtractor{logger: logger}
}

// Text returns the text of every page in document order, joined by newlines.
func (e *FitzExtractor) Text(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			e.logger.Warn("pdf.close_error", "error", err)
		}
	}()

	n := doc.NumPage()
	pages := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		t, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("page %d text: %w", i+1, err)
		}
		pages = append(pages, t)
	}

	e.logger.Debug("pdf.text.ok", "pages", n, "bytes", len(data))
	return JoinPages(pages), nil
}

// JoinPages concatenates page texts separated by newlines.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n")
}

package llm

import (
	"context"

	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

// ExtractRequest is one normalized source handed to the model.
type ExtractRequest struct {
	SourceURL string
	Input     entity.NormalizedInput
}

// Extractor is the interface the pipeline depends on. It returns the model's
// free-form completion text; repair and parsing happen in ParseRecords.
// Errors are *common.ExtractionFailure.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (string, error)
}

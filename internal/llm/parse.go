package llm

import (
	"encoding/json"
	"log/slog"

	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
)

// ParseRecords turns raw model text into records: repair, decode, sanitize,
// validate, then day expansion. A response with no recoverable array yields
// zero records and no error; undecodable or invalid JSON is an ExtractionFailure.
func ParseRecords(sourceURL, raw string, logger *slog.Logger) ([]entity.SpecialRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repaired := RepairJSONArray(raw)
	if len(repaired) != len(raw) {
		logger.Debug("llm.parse.repaired", "source_url", sourceURL, "raw_len", len(raw), "json_len", len(repaired))
	}

	if !json.Valid([]byte(repaired)) {
		logger.Warn("llm.parse.invalid_json", "source_url", sourceURL, "json", truncate(repaired, 500))
		return nil, &common.ExtractionFailure{Source: sourceURL, Stage: "decode", Cause: ErrInvalidJSON}
	}

	cleaned, _, err := SanitizeSpecials([]byte(repaired), logger)
	if err != nil {
		return nil, &common.ExtractionFailure{Source: sourceURL, Stage: "decode", Cause: err}
	}
	if err := ValidateSpecials(cleaned); err != nil {
		logger.Warn("llm.parse.schema_validation_failed", "source_url", sourceURL, "error", err)
		return nil, &common.ExtractionFailure{Source: sourceURL, Stage: "validate", Cause: err}
	}

	var records []entity.SpecialRecord
	if err := json.Unmarshal(cleaned, &records); err != nil {
		return nil, &common.ExtractionFailure{Source: sourceURL, Stage: "decode", Cause: err}
	}

	expanded := ExpandDays(records)
	logger.Debug("llm.parse.ok", "source_url", sourceURL, "model_records", len(records), "records", len(expanded))
	return expanded, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

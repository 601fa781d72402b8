package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Failure kinds. ErrConfiguration aborts the run; ErrStore is logged and the run
// continues; ErrIngestion and ErrExtraction skip a single source.
var (
	ErrConfiguration = errors.New("configuration failure")
	ErrStore         = errors.New("store failure")
	ErrIngestion     = errors.New("ingestion failure")
	ErrExtraction    = errors.New("extraction failure")
	ErrInvalidInput  = errors.New("invalid input")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ConfigError builds a CONFIG_ERROR that matches ErrConfiguration.
func ConfigError(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrConfiguration
	} else if !errors.Is(cause, ErrConfiguration) {
		cause = fmt.Errorf("%w: %w", ErrConfiguration, cause)
	}
	return NewAppError("CONFIG_ERROR", message, cause)
}

// StoreError wraps a store delete/insert error so it matches ErrStore.
func StoreError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStore, op, cause)
}

// IngestionFailure is a fetch, render or parse error for a single source.
type IngestionFailure struct {
	Source string
	Cause  error
}

func (e *IngestionFailure) Error() string {
	return fmt.Sprintf("ingestion failed for %s: %v", e.Source, e.Cause)
}

func (e *IngestionFailure) Unwrap() error { return e.Cause }

func (e *IngestionFailure) Is(target error) bool { return target == ErrIngestion }

// ExtractionFailure is a model call error or an unrecoverable model response.
// Stage names the step that failed ("request", "decode", "validate").
type ExtractionFailure struct {
	Source string
	Stage  string
	Cause  error
}

func (e *ExtractionFailure) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("extraction failed for %s at %s: %v", e.Source, e.Stage, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %v", e.Source, e.Cause)
}

func (e *ExtractionFailure) Unwrap() error { return e.Cause }

func (e *ExtractionFailure) Is(target error) bool { return target == ErrExtraction }

// Kind names the failure class of err for logs and run summaries.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrIngestion):
		return "ingestion"
	case errors.Is(err, ErrExtraction):
		return "extraction"
	case errors.Is(err, ErrStore):
		return "store"
	default:
		return "unknown"
	}
}

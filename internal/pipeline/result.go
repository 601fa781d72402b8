package pipeline

import (
	"time"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
)

// SourceResult is the outcome of one source; failures are values, not errors.
type SourceResult struct {
	URL     string
	Kind    constants.SourceKind
	Status  constants.SourceStatus
	Records int
	Err     error
}

// ErrKind names the failure class of a skipped source.
func (r SourceResult) ErrKind() string {
	return common.Kind(r.Err)
}

// VenueResult collects a venue's sources. DeleteErr is set when clearing the
// venue's previous records failed; the sources still ran.
type VenueResult struct {
	Name      string
	DeleteErr error
	Sources   []SourceResult
	Duration  time.Duration
}

// RunSummary is returned by Processor.Run; venues are in configuration order.
type RunSummary struct {
	RunID    string
	Venues   []VenueResult
	Duration time.Duration
}

func (s RunSummary) count(status constants.SourceStatus) int {
	n := 0
	for _, v := range s.Venues {
		for _, src := range v.Sources {
			if src.Status == status {
				n++
			}
		}
	}
	return n
}

func (s RunSummary) SourcesInserted() int { return s.count(constants.SourceInserted) }
func (s RunSummary) SourcesSkipped() int  { return s.count(constants.SourceSkipped) }

func (s RunSummary) RecordsInserted() int {
	n := 0
	for _, v := range s.Venues {
		for _, src := range v.Sources {
			if src.Status == constants.SourceInserted {
				n += src.Records
			}
		}
	}
	return n
}

// StoreFailures counts failed deletes and inserts.
func (s RunSummary) StoreFailures() int {
	n := 0
	for _, v := range s.Venues {
		if v.DeleteErr != nil {
			n++
		}
		for _, src := range v.Sources {
			if src.ErrKind() == "store" {
				n++
			}
		}
	}
	return n
}

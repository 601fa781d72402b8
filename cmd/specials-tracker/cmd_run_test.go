package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/pipeline"
)

func TestPrintSummary(t *testing.T) {
	s := pipeline.RunSummary{
		Duration: 1500 * time.Millisecond,
		Venues: []pipeline.VenueResult{{
			Name:      "RED",
			DeleteErr: common.StoreError("delete", errors.New("timeout")),
			Sources: []pipeline.SourceResult{
				{URL: "https://red.com/menu.pdf", Kind: constants.PdfDocument, Status: constants.SourceInserted, Records: 4},
				{URL: "https://red.com/board.png", Kind: constants.Image, Status: constants.SourceSkipped,
					Err: &common.IngestionFailure{Source: "https://red.com/board.png", Cause: errors.New("status 404")}},
			},
		}},
	}

	var buf bytes.Buffer
	printSummary(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "RED\n")
	assert.Contains(t, out, "! could not clear previous specials")
	assert.Contains(t, out, "+ PDF      https://red.com/menu.pdf 4 specials")
	assert.Contains(t, out, "- IMAGE    https://red.com/board.png skipped (ingestion)")
	assert.Contains(t, out, "venues: 1  sources inserted: 1  skipped: 1  records: 4  store failures: 1  (1.5s)")
}

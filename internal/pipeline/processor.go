package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
	"github.com/joseph-ayodele/specials-tracker/internal/llm"
	"github.com/joseph-ayodele/specials-tracker/internal/metrics"
)

// Normalizer turns a source into model input.
type Normalizer interface {
	Normalize(ctx context.Context, src entity.Source) (entity.NormalizedInput, error)
}

// Store is the part of the record store the pipeline writes to.
type Store interface {
	DeleteByBar(ctx context.Context, barName string) (int64, error)
	InsertBatch(ctx context.Context, rows []entity.SpecialRecord) error
}

type Config struct {
	// Workers bounds how many venues run at once. Sources within a venue are
	// always sequential.
	Workers int
}

// Processor runs the delete-then-repopulate sequence for each venue.
type Processor struct {
	logger     *slog.Logger
	cfg        Config
	normalizer Normalizer
	extractor  llm.Extractor
	store      Store
	metrics    *metrics.Metrics
}

func NewProcessor(logger *slog.Logger, cfg Config, normalizer Normalizer, extractor llm.Extractor, store Store, m *metrics.Metrics) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Processor{
		logger:     logger,
		cfg:        cfg,
		normalizer: normalizer,
		extractor:  extractor,
		store:      store,
		metrics:    m,
	}
}

// Run processes venues in configuration order (or up to Workers at a time) and
// never fails: every problem is reported in the summary.
func (p *Processor) Run(ctx context.Context, venues []entity.Venue) RunSummary {
	runID := uuid.New().String()
	ctx = common.WithRunID(ctx, runID)
	start := time.Now()

	p.logger.Info("pipeline.run.start", "run_id", runID, "venues", len(venues), "workers", p.cfg.Workers)

	results := make([]VenueResult, len(venues))
	var g errgroup.Group
	g.SetLimit(p.cfg.Workers)
	for _, idx := range groupByName(venues) {
		// entries sharing a name run on one worker, in file order
		g.Go(func() error {
			for _, i := range idx {
				results[i] = p.ProcessVenue(ctx, venues[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := RunSummary{RunID: runID, Venues: results, Duration: time.Since(start)}
	p.logger.Info("pipeline.run.done",
		"run_id", runID,
		"venues", len(venues),
		"sources_inserted", summary.SourcesInserted(),
		"sources_skipped", summary.SourcesSkipped(),
		"records_inserted", summary.RecordsInserted(),
		"store_failures", summary.StoreFailures(),
		"elapsed_ms", summary.Duration.Milliseconds(),
	)
	return summary
}

// groupByName returns venue indexes grouped by name, groups ordered by first appearance.
func groupByName(venues []entity.Venue) [][]int {
	var groups [][]int
	pos := make(map[string]int, len(venues))
	for i, v := range venues {
		g, ok := pos[v.Name]
		if !ok {
			g = len(groups)
			pos[v.Name] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// ProcessVenue clears the venue's records, then processes each source in order.
// A failed delete is logged and the sources still run.
func (p *Processor) ProcessVenue(ctx context.Context, v entity.Venue) VenueResult {
	start := time.Now()
	ctx = common.WithVenue(ctx, v.Name)
	log := p.logger.With("run_id", common.RunIDFromContext(ctx), "venue", v.Name)
	log.Info("pipeline.venue.start", "sources", len(v.Sources))

	res := VenueResult{Name: v.Name, Sources: make([]SourceResult, 0, len(v.Sources))}

	if n, err := p.store.DeleteByBar(ctx, v.Name); err != nil {
		res.DeleteErr = common.StoreError("delete", err)
		p.metrics.StoreError("delete")
		log.Warn("pipeline.venue.delete_failed", "error", err)
	} else {
		log.Info("pipeline.venue.cleared", "deleted", n)
	}

	for _, src := range v.Sources {
		res.Sources = append(res.Sources, p.ProcessSource(ctx, v.Name, src))
	}

	res.Duration = time.Since(start)
	p.metrics.VenueDuration(res.Duration)
	log.Info("pipeline.venue.done", "elapsed_ms", res.Duration.Milliseconds())
	return res
}

// ProcessSource walks one source through Pending -> Normalized -> Extracted ->
// Parsed -> Inserted. Any failure moves it to Skipped.
func (p *Processor) ProcessSource(ctx context.Context, venue string, src entity.Source) SourceResult {
	res := SourceResult{URL: src.URL, Kind: src.ResolveKind(), Status: constants.SourcePending}
	log := p.logger.With("run_id", common.RunIDFromContext(ctx), "venue", venue, "url", src.URL, "kind", res.Kind)

	records, err := p.extract(ctx, src, &res)
	if err != nil {
		return p.skip(log, res, err)
	}

	for i := range records {
		records[i].BarName = venue
		records[i].SourceURL = src.URL
	}

	if len(records) > 0 {
		if err := p.store.InsertBatch(ctx, records); err != nil {
			p.metrics.StoreError("insert")
			return p.skip(log, res, common.StoreError("insert", err))
		}
	}
	res.Status = constants.SourceInserted
	res.Records = len(records)
	p.metrics.SourceDone(string(res.Kind), string(res.Status))
	p.metrics.RecordsInserted(res.Records)
	log.Info("pipeline.source.inserted", "records", res.Records)
	return res
}

// ExtractSource runs normalize, extract and parse for one source without
// touching the store. Records are not stamped.
func (p *Processor) ExtractSource(ctx context.Context, src entity.Source) ([]entity.SpecialRecord, error) {
	res := SourceResult{URL: src.URL, Kind: src.ResolveKind(), Status: constants.SourcePending}
	return p.extract(ctx, src, &res)
}

func (p *Processor) extract(ctx context.Context, src entity.Source, res *SourceResult) ([]entity.SpecialRecord, error) {
	in, err := p.normalizer.Normalize(ctx, src)
	if err != nil {
		return nil, err
	}
	res.Status = constants.SourceNormalized

	raw, err := p.extractor.Extract(ctx, llm.ExtractRequest{SourceURL: src.URL, Input: in})
	if err != nil {
		return nil, err
	}
	res.Status = constants.SourceExtracted

	records, err := llm.ParseRecords(src.URL, raw, p.logger)
	if err != nil {
		return nil, err
	}
	res.Status = constants.SourceParsed
	return records, nil
}

func (p *Processor) skip(log *slog.Logger, res SourceResult, err error) SourceResult {
	log.Warn("pipeline.source.skipped", "stage", res.Status, "error_kind", common.Kind(err), "error", err)
	res.Status = constants.SourceSkipped
	res.Err = err
	p.metrics.SourceDone(string(res.Kind), string(res.Status))
	return res
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/metrics"
	"github.com/joseph-ayodele/specials-tracker/internal/pipeline"
	"github.com/joseph-ayodele/specials-tracker/internal/repository"
	"github.com/joseph-ayodele/specials-tracker/internal/venues"
)

var runFlags struct {
	venuesFile  string
	store       string
	inmem       bool
	workers     int
	metricsFile string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape every configured venue and replace its specials",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.venuesFile, "venues", "", "Venue list (.yaml, .json or .xlsx); default VENUES_FILE or configs/venues.yaml")
	f.StringVar(&runFlags.store, "store", "", "Store driver: postgres, sqlite or supabase (overrides STORE_DRIVER)")
	f.BoolVar(&runFlags.inmem, "inmem", false, "Use an in-memory SQLite store (dry run)")
	f.IntVar(&runFlags.workers, "workers", 0, "Venues processed at once (overrides PIPELINE_WORKERS)")
	f.StringVar(&runFlags.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics here after the run")
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	applyRunFlags()

	// configuration failures abort before any venue runs
	if err := cfg.Validate(); err != nil {
		return err
	}
	list, err := venues.LoadFromPath(cfg.Pipeline.VenuesFile)
	if err != nil {
		return common.ConfigError("load venues from "+cfg.Pipeline.VenuesFile, err)
	}

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	if si, ok := store.(repository.SchemaInitializer); ok {
		if err := si.EnsureSchema(ctx); err != nil {
			return common.ConfigError("prepare specials table", err)
		}
	}

	m := metrics.New()
	proc := pipeline.NewProcessor(
		common.Component(logger, "pipeline"),
		pipeline.Config{Workers: cfg.Pipeline.Workers},
		newNormalizer(cfg, logger),
		newExtractor(cfg, logger),
		store,
		m,
	)

	summary := proc.Run(ctx, list)
	printSummary(cmd.OutOrStdout(), summary)

	if err := m.WriteTextfile(cfg.Pipeline.MetricsFile); err != nil {
		logger.Warn("metrics.write_failed", "path", cfg.Pipeline.MetricsFile, "error", err)
	}
	return nil
}

func applyRunFlags() {
	if runFlags.venuesFile != "" {
		cfg.Pipeline.VenuesFile = runFlags.venuesFile
	}
	if runFlags.store != "" {
		cfg.Store.Driver = runFlags.store
	}
	if runFlags.inmem {
		cfg.Store.Driver = common.DriverSQLite
		cfg.Store.DSN = ":memory:"
	}
	if runFlags.workers > 0 {
		cfg.Pipeline.Workers = runFlags.workers
	}
	if runFlags.metricsFile != "" {
		cfg.Pipeline.MetricsFile = runFlags.metricsFile
	}
}

func printSummary(out io.Writer, s pipeline.RunSummary) {
	for _, v := range s.Venues {
		fmt.Fprintf(out, "%s\n", v.Name)
		if v.DeleteErr != nil {
			fmt.Fprintf(out, "  ! could not clear previous specials: %v\n", v.DeleteErr)
		}
		for _, src := range v.Sources {
			if src.Status == constants.SourceSkipped {
				fmt.Fprintf(out, "  - %-8s %s skipped (%s): %v\n", src.Kind, src.URL, src.ErrKind(), src.Err)
				continue
			}
			fmt.Fprintf(out, "  + %-8s %s %d specials\n", src.Kind, src.URL, src.Records)
		}
	}
	fmt.Fprintf(out, "\nvenues: %d  sources inserted: %d  skipped: %d  records: %d  store failures: %d  (%s)\n",
		len(s.Venues), s.SourcesInserted(), s.SourcesSkipped(), s.RecordsInserted(), s.StoreFailures(),
		s.Duration.Round(time.Millisecond))
}

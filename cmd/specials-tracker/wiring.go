package main

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/specials-tracker/internal/browser"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/fetch"
	"github.com/joseph-ayodele/specials-tracker/internal/llm/openai"
	"github.com/joseph-ayodele/specials-tracker/internal/normalize"
	"github.com/joseph-ayodele/specials-tracker/internal/pdf"
	"github.com/joseph-ayodele/specials-tracker/internal/repository"
)

// openStore connects the configured backend. Failures here are configuration
// failures: nothing has run yet.
func openStore(ctx context.Context, c *common.Config, logger *slog.Logger) (repository.SpecialsRepository, func(), error) {
	log := common.Component(logger, "store")
	switch c.Store.Driver {
	case common.DriverPostgres:
		drv, pool, err := repository.OpenPostgres(ctx, repository.Config{
			DSN:              c.Store.DSN,
			MaxConns:         c.Store.MaxConns,
			MinConns:         c.Store.MinConns,
			MaxConnLifetime:  c.Store.MaxConnLifetime,
			MaxConnIdleTime:  c.Store.MaxConnIdleTime,
			DialTimeout:      c.Store.DialTimeout,
			StatementTimeout: c.Store.StatementTimeout,
		}, log)
		if err != nil {
			return nil, nil, common.ConfigError("connect to postgres", err)
		}
		return repository.NewSQLRepository(drv, log), func() { repository.Close(drv, pool, log) }, nil
	case common.DriverSQLite:
		drv, err := repository.OpenSQLite(ctx, c.Store.DSN, log)
		if err != nil {
			return nil, nil, common.ConfigError("open sqlite", err)
		}
		return repository.NewSQLRepository(drv, log), func() { repository.Close(drv, nil, log) }, nil
	case common.DriverSupabase:
		return repository.NewSupabaseRepository(c.Store.SupabaseURL, c.Store.SupabaseKey, log), func() {}, nil
	}
	return nil, nil, c.ValidateStore()
}

func newNormalizer(c *common.Config, logger *slog.Logger) *normalize.Normalizer {
	fetcher := fetch.NewClient(fetch.Config{
		UserAgent: c.Fetch.UserAgent,
		Timeout:   c.Fetch.Timeout,
		MaxBytes:  c.Fetch.MaxBytes,
	}, common.Component(logger, "fetch"))
	renderer := browser.NewChromeRenderer(browser.Config{
		NavigationTimeout: c.Browser.NavigationTimeout,
		Settle:            c.Browser.Settle,
		MaxChars:          c.Browser.MaxChars,
		Headless:          c.Browser.Headless,
		ExecPath:          c.Browser.ExecPath,
		UserAgent:         c.Fetch.UserAgent,
	}, common.Component(logger, "browser"))
	return normalize.NewNormalizer(fetcher, renderer, pdf.NewFitzExtractor(logger), common.Component(logger, "normalize"))
}

func newExtractor(c *common.Config, logger *slog.Logger) *openai.Client {
	return openai.NewClient(openai.Config{
		APIKey:      c.LLM.APIKey,
		BaseURL:     c.LLM.BaseURL,
		Model:       c.LLM.Model,
		VisionModel: c.LLM.VisionModel,
		Timeout:     c.LLM.Timeout,
	}, common.Component(logger, "llm"))
}

package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Config for headless page rendering.
type Config struct {
	NavigationTimeout time.Duration
	Settle            time.Duration
	MaxChars          int
	Headless          bool
	ExecPath          string
	UserAgent         string
}

// ChromeRenderer renders a page in a fresh Chrome process per call and returns
// its visible text.
type ChromeRenderer struct {
	cfg    Config
	logger *slog.Logger
}

func NewChromeRenderer(cfg Config, logger *slog.Logger) *ChromeRenderer {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = 60 * time.Second
	}
	if cfg.Settle < 0 {
		cfg.Settle = 0
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 25000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChromeRenderer{cfg: cfg, logger: logger}
}

func (r *ChromeRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", r.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if r.cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.cfg.UserAgent))
	}
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}
	return opts
}

// Render navigates to url (bounded by NavigationTimeout), waits the flat settle
// period, and returns the first MaxChars characters of the page's visible text.
// The browser is shut down before Render returns on every path.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	start := time.Now()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// start the browser on the long-lived context so the navigation timeout
	// below only bounds the navigation
	if err := chromedp.Run(browserCtx); err != nil {
		return "", fmt.Errorf("start browser: %w", err)
	}

	navCtx, navCancel := context.WithTimeout(browserCtx, r.cfg.NavigationTimeout)
	defer navCancel()
	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		r.logger.Warn("browser.navigate_error", "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("navigate %s: %w", url, err)
	}

	var doc string
	if err := chromedp.Run(browserCtx,
		chromedp.Sleep(r.cfg.Settle),
		chromedp.OuterHTML("html", &doc, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("read dom %s: %w", url, err)
	}

	text, err := VisibleText(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("extract text %s: %w", url, err)
	}
	out := Truncate(text, r.cfg.MaxChars)

	r.logger.Info("browser.rendered",
		"url", url,
		"html_bytes", len(doc),
		"text_len", len(text),
		"kept_len", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

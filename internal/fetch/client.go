package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Config for the HTTP fetcher.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	MaxBytes  int64
}

// Response is a fetched resource.
type Response struct {
	URL         string
	Body        []byte
	ContentType string
}

// StatusError is a non-2xx response, kept apart from network errors.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// ErrTooLarge is returned when the body exceeds Config.MaxBytes.
var ErrTooLarge = errors.New("response body too large")

// Client does plain GETs with a browser-like User-Agent.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 25 << 20
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Fetch GETs url and returns the body and declared content type.
func (c *Client) Fetch(ctx context.Context, url string) (*Response, error) {
	reqID := uuid.New().String()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("fetch.send_error", "req_id", reqID, "url", url, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.logger.Warn("fetch.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		c.logger.Warn("fetch.bad_status", "req_id", reqID, "url", url, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(body)) > c.cfg.MaxBytes {
		return nil, fmt.Errorf("GET %s: %w (limit %d bytes)", url, ErrTooLarge, c.cfg.MaxBytes)
	}

	c.logger.Info("fetch.ok",
		"req_id", reqID,
		"url", url,
		"content_type", resp.Header.Get("Content-Type"),
		"bytes", len(body),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Response{URL: url, Body: body, ContentType: resp.Header.Get("Content-Type")}, nil
}

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
	"github.com/joseph-ayodele/specials-tracker/internal/llm"
)

var _ llm.Extractor = (*Client)(nil)

// temperature is fixed so the same input yields the same records.
const temperature float32 = 0

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

// chatMessage content is either a plain string or a list of contentPart.
type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract implements llm.Extractor. Text inputs go to the text model with the raw
// text appended to the prompt; image inputs go to the vision model as a
// [text, image_url] content pair. No retry.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := c.buildRequest(req.Input)

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"venue", common.VenueFromContext(ctx),
		"source_url", req.SourceURL,
		"model", body.Model,
		"input", req.Input.Kind.String(),
		"input_len", req.Input.Size(),
	)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "source_url", req.SourceURL, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &common.ExtractionFailure{Source: req.SourceURL, Stage: "request", Cause: err}
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &common.ExtractionFailure{Source: req.SourceURL, Stage: "response", Cause: fmt.Errorf("decode completion: %w", err)}
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &common.ExtractionFailure{Source: req.SourceURL, Stage: "response", Cause: llm.ErrNoChoices}
	}

	content := cc.Choices[0].Message.Content
	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"source_url", req.SourceURL,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) buildRequest(in entity.NormalizedInput) chatRequest {
	if in.Kind == entity.InputImage {
		return chatRequest{
			Model:       c.cfg.VisionModel,
			Temperature: temperature,
			Messages: []chatMessage{{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: llm.BuildImagePrompt()},
					{Type: "image_url", ImageURL: &imageURL{URL: in.DataURL()}},
				},
			}},
		}
	}
	return chatRequest{
		Model:       c.cfg.Model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "user", Content: llm.BuildTextPrompt(in.Content)},
		},
	}
}

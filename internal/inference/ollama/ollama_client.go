package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"cvparser/internal/config"
	"cvparser/internal/domain"
	"cvparser/internal/inference"
	"cvparser/internal/port"
)

const defaultModel = "gemma3:1b"

var _ port.FieldExtractor = (*Client)(nil)

// Client implements port.FieldExtractor against Ollama's /api/generate.
type Client struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewClient creates a Client from inference settings.
func NewClient(cfg *config.OllamaConfig) *Client {
	return NewClientWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout()})
}

// NewClientWithHTTPClient creates a Client using the given HTTP client (for testing).
func NewClientWithHTTPClient(cfg *config.OllamaConfig, hc *http.Client) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		endpoint: cfg.Host,
		model:    model,
		client:   hc,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ExtractFields prompts the model for the requested fields and returns its
// reply unchanged under domain.ResponseKey. The reply is not parsed.
func (c *Client) ExtractFields(ctx context.Context, input port.FieldExtractionInput) (domain.ExtractedData, error) {
	prompt := inference.BuildFieldExtractionPrompt(input.Text, input.Fields)

	bodyBytes, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling ollama API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	slog.Debug("ollama generate",
		"model", c.model,
		"status", resp.StatusCode,
		"prompt_bytes", len(prompt),
		"response_bytes", len(respBody),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("ollama API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	text, err := inference.DecodeGenerateResponse(respBody)
	if err != nil {
		return nil, err
	}
	return domain.NewExtractedData(text), nil
}

// Ping checks that the endpoint's server answers at its origin.
func (c *Client) Ping(ctx context.Context) error {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return fmt.Errorf("parsing endpoint: %w", err)
	}
	origin := (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("pinging ollama: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("ollama ping returned status %d", resp.StatusCode)
	}
	return nil
}

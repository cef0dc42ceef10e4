package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextClassifier is the capability interface for the external
// text-classification service: submit text, a bounded system instruction
// and a token budget; receive raw response text or a call failure. Any
// provider satisfying this interface can back the Classifier.
type TextClassifier interface {
	// Classify submits the request and returns the raw response text.
	Classify(ctx context.Context, req *Request) (string, error)
}

// Request carries one classification call.
type Request struct {
	// SystemInstruction constrains the provider's output format.
	SystemInstruction string
	// Text is the (already truncated) content to judge.
	Text string
	// MaxTokens bounds the provider's response size.
	MaxTokens int
}

// HTTPClassifier calls a JSON-over-HTTP classification endpoint. The call
// carries a hard timeout and is never retried; the caller fails open on
// any error.
type HTTPClassifier struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// HTTPConfig holds settings for the HTTP classification provider.
type HTTPConfig struct {
	// Endpoint is the classification API URL.
	Endpoint string
	// APIKey is the bearer token, empty for unauthenticated endpoints.
	APIKey string
	// Model names the classification model to use.
	Model string
	// Timeout is the hard per-call budget.
	Timeout time.Duration
}

// NewHTTPClassifier creates an HTTP-backed TextClassifier.
func NewHTTPClassifier(cfg *HTTPConfig) *HTTPClassifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 800 * time.Millisecond
	}
	return &HTTPClassifier{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		client:   &http.Client{Timeout: timeout},
	}
}

type classifyRequestBody struct {
	Model     string `json:"model,omitempty"`
	System    string `json:"system"`
	Input     string `json:"input"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type classifyResponseBody struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Classify submits the request and returns the provider's raw output text.
func (c *HTTPClassifier) Classify(ctx context.Context, req *Request) (string, error) {
	body, err := json.Marshal(classifyRequestBody{
		Model:     c.model,
		System:    req.SystemInstruction,
		Input:     req.Text,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("classification call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classification endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed classifyResponseBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("classification endpoint error: %s", parsed.Error)
	}

	return parsed.Output, nil
}

// Package ai implements the AI-backed packing list generation path: a thin
// client for the OpenAI chat completion API and an adapter that turns
// completions into packing lists, degrading to the rule-based engine in
// internal/packing on any failure.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Completer is the completion backend abstraction the adapter depends on.
// Configured must be cheap and side-effect free: the adapter checks it
// before every request to decide whether the AI path is available at all.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}

// CompletionOptions bound a single completion request.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float64
}

// systemPrompt pins the assistant to JSON-only output so the response can be
// parsed directly without stripping prose.
const systemPrompt = "You are a helpful travel assistant that creates comprehensive packing lists. Always respond with valid JSON only."

// requestTimeout bounds the completion round trip. The adapter treats a
// timeout like any other upstream failure and falls back.
const requestTimeout = 15 * time.Second

// OpenAIClient calls the OpenAI chat completions endpoint.
// The zero value is not usable; construct with NewOpenAIClient.
type OpenAIClient struct {
	// BaseURL may be overridden in tests. Defaults to the public API.
	BaseURL string

	apiKey string
	model  string
	http   *http.Client
}

// NewOpenAIClient constructs a client for the given API key. An empty key is
// allowed and simply leaves the client unconfigured.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		BaseURL: "https://api.openai.com/v1",
		apiKey:  apiKey,
		model:   "gpt-3.5-turbo",
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether an API key is present.
func (c *OpenAIClient) Configured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// chatRequest / chatResponse mirror the slice of the chat completions wire
// format this client uses.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion request and returns the raw text of the
// first choice. All transport, status, and decode failures surface as errors
// for the adapter to fold into its fallback transition.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("ai.OpenAIClient.Complete: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai.OpenAIClient.Complete: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai.OpenAIClient.Complete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the operator log, then discard.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ai.OpenAIClient.Complete: status %d: %s", resp.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ai.OpenAIClient.Complete: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai.OpenAIClient.Complete: response contains no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible completions endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel matches what the frontend expects in the response
	// envelope.
	DefaultModel = "llama-3.1-8b-instant"

	apiKeyEnv = "GROQ_LLM_API"
)

// ErrMissingAPIKey distinguishes a configuration problem from an upstream
// failure. The key is read per call so rotating it needs no restart; its
// absence never aborts startup, only the request at hand.
var ErrMissingAPIKey = errors.New("GROQ_LLM_API is not set")

// UpstreamError reports a failed or non-2xx call to the Groq API.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("groq upstream: %v", e.Err)
	}
	return fmt.Sprintf("groq upstream: status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// GroqClient is a single-turn client for Groq's chat-completions API. It
// keeps no cross-request state: no retries, no caching, no history.
type GroqClient struct {
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTP        *http.Client
}

func NewGroqClient() *GroqClient {
	return &GroqClient{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: 0.7,
		MaxTokens:   1024,
		HTTP:        &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a single user message and returns the completion text.
func (c *GroqClient) Complete(ctx context.Context, message string) (string, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body, err := json.Marshal(completionRequest{
		Messages:    []chatMessage{{Role: "user", Content: message}},
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if out.Error != nil && out.Error.Message != "" {
			return "", &UpstreamError{StatusCode: resp.StatusCode, Err: errors.New(out.Error.Message)}
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	if len(out.Choices) == 0 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: errors.New("empty choices in response")}
	}
	return out.Choices[0].Message.Content, nil
}

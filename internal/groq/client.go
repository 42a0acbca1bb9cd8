// Package groq provides a minimal client for the Groq chat-completions API
// (OpenAI-compatible wire format).
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// --- Groq API Configuration ---
const (
	apiURL         = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "meta-llama/llama-4-scout-17b-16e-instruct"
	requestTimeout = 60 * time.Second
)

// Failure classes callers may branch on. Anything else comes back as a
// descriptive wrapped error.
var (
	ErrNotConfigured = errors.New("model API key is not configured")
	ErrUnauthorized  = errors.New("model request unauthorized")
	ErrRateLimited   = errors.New("model rate limited")
	ErrUnavailable   = errors.New("model unavailable")
)

// --- Structs for the chat-completions request/response ---

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Client calls the Groq chat-completions endpoint. It is stateless per call
// and safe to share across concurrent requests; construct one at startup.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client around the given API key. An empty key is
// tolerated: every call then fails with ErrNotConfigured, which the pipeline
// absorbs into fallback plans.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		log.Warn().Msg("GROQ_API_KEY is empty; all model invocations will fail over to fallback plans")
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Chat sends one system + one user message and returns the model's text.
// A per-call timeout bounds the request; there are no retries.
func (c *Client) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := ChatRequest{
		Model: c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.apiURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode >= 500:
		return "", ErrUnavailable
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API returned non-200 status: %s, body: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("model error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content found in model response")
	}
	return chatResp.Choices[0].Message.Content, nil
}

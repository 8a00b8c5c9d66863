// internal/executor/executor.go
// Package executor issues chat-completion requests against an
// OpenAI-compatible HTTP API. Each call is a single request with no retry;
// failures surface as plain errors for the orchestrator to record.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mwiater/personasweep/internal/appconfig"
	"github.com/mwiater/personasweep/internal/logging"
	"github.com/mwiater/personasweep/internal/prompt"
)

// ErrMissingAPIKey indicates that no API credential was found in the
// process environment.
var ErrMissingAPIKey = errors.New("OpenAI API key required. Set the OPENAI_API_KEY environment variable, e.g. export OPENAI_API_KEY='your-api-key-here'")

// apiKeyEnvVar names the environment variable holding the API credential.
const apiKeyEnvVar = "OPENAI_API_KEY"

// APIKeyFromEnv reads the API credential from the environment.
func APIKeyFromEnv() (string, error) {
	key := strings.TrimSpace(os.Getenv(apiKeyEnvVar))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// Outcome carries the normalized result of one successful request.
type Outcome struct {
	Response    string
	Model       string
	TotalTokens int
}

// Client sends chat-completion requests to a single API endpoint.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

// New constructs a Client configured with the application's request timeout
// and base URL. The API key must already have been resolved by the caller.
func New(cfg appconfig.Config, apiKey string) *Client {
	timeout := cfg.RequestTimeout()
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL(),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Execute sends one chat-completion request built from the fixed system
// instruction and the given user prompt. It blocks until the API responds or
// the client timeout elapses; there is no retry and no distinction between
// failure subtypes beyond the returned error text.
func (c *Client) Execute(ctx context.Context, userPrompt, model string, temperature float64, maxTokens int) (Outcome, error) {
	payload := map[string]any{
		"model": model,
		"messages": []chatMessage{
			{Role: "system", Content: prompt.SystemInstruction},
			{Role: "user", Content: userPrompt},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{}, err
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	logging.LogRequest("SWEEP->API", endpoint, model, body)

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Outcome{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, err
	}
	logging.LogRequest("API->SWEEP", endpoint, model, respBody)

	if resp.StatusCode != http.StatusOK {
		return Outcome{}, fmt.Errorf("chat completions returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Outcome{}, fmt.Errorf("malformed chat response: %w", err)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return Outcome{}, fmt.Errorf("api error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return Outcome{}, errors.New("chat response contained no choices")
	}

	modelName := parsed.Model
	if modelName == "" {
		modelName = model
	}

	return Outcome{
		Response:    parsed.Choices[0].Message.Content,
		Model:       modelName,
		TotalTokens: parsed.Usage.TotalTokens,
	}, nil
}

// internal/executor/executor_test.go
package executor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mwiater/personasweep/internal/appconfig"
	"github.com/mwiater/personasweep/internal/prompt"
)

func clientFor(serverURL string) *Client {
	cfg := appconfig.Config{APIBaseURL: serverURL, TimeoutSeconds: 5}
	return New(cfg, "test-key")
}

// TestExecuteSuccess verifies the request payload (two-message structure,
// model, sampling knobs, bearer auth) and the parsed outcome.
func TestExecuteSuccess(t *testing.T) {
	t.Parallel()

	var capturedBody []byte
	var capturedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		capturedAuth = r.Header.Get("Authorization")
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		capturedBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4-0613",
			"choices": [{"message": {"role": "assistant", "content": "A. Very clear"}}],
			"usage": {"prompt_tokens": 400, "completion_tokens": 80, "total_tokens": 480}
		}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	outcome, err := client.Execute(context.Background(), "user prompt here", "gpt-4", 0.7, 500)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if outcome.Response != "A. Very clear" {
		t.Fatalf("unexpected response %q", outcome.Response)
	}
	if outcome.Model != "gpt-4-0613" {
		t.Fatalf("expected echoed model name, got %q", outcome.Model)
	}
	if outcome.TotalTokens != 480 {
		t.Fatalf("expected 480 total tokens, got %d", outcome.TotalTokens)
	}

	if capturedAuth != "Bearer test-key" {
		t.Fatalf("unexpected Authorization header %q", capturedAuth)
	}

	var payload struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}
	if err := json.Unmarshal(capturedBody, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Model != "gpt-4" || payload.Temperature != 0.7 || payload.MaxTokens != 500 {
		t.Fatalf("unexpected payload knobs: %+v", payload)
	}
	if len(payload.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(payload.Messages))
	}
	if payload.Messages[0].Role != "system" || payload.Messages[0].Content != prompt.SystemInstruction {
		t.Fatalf("unexpected system message: %+v", payload.Messages[0])
	}
	if payload.Messages[1].Role != "user" || payload.Messages[1].Content != "user prompt here" {
		t.Fatalf("unexpected user message: %+v", payload.Messages[1])
	}
}

// TestExecuteHTTPError verifies that non-200 responses surface as errors
// carrying the status and body.
func TestExecuteHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := clientFor(server.URL)
	_, err := client.Execute(context.Background(), "p", "gpt-4", 0.7, 500)
	if err == nil {
		t.Fatal("Execute against a 401 should have failed")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Incorrect API key") {
		t.Fatalf("error missing status or body: %v", err)
	}
}

// TestExecuteMalformedResponse verifies that unparsable and empty responses
// are errors, not silent successes.
func TestExecuteMalformedResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json at all`},
		{"no choices", `{"model": "gpt-4", "choices": []}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := clientFor(server.URL)
			if _, err := client.Execute(context.Background(), "p", "gpt-4", 0.7, 500); err == nil {
				t.Fatal("Execute should have failed")
			}
		})
	}
}

// TestAPIKeyFromEnv verifies the credential lookup and its remediation
// message.
func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv(apiKeyEnvVar, "sk-test")
	key, err := APIKeyFromEnv()
	if err != nil {
		t.Fatalf("APIKeyFromEnv returned error: %v", err)
	}
	if key != "sk-test" {
		t.Fatalf("unexpected key %q", key)
	}

	t.Setenv(apiKeyEnvVar, "   ")
	if _, err := APIKeyFromEnv(); err == nil {
		t.Fatal("blank API key should have failed")
	} else if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("error missing remediation hint: %v", err)
	}
}

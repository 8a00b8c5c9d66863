// internal/logging/logging_test.go
package logging

import (
	"strings"
	"testing"
)

// TestBuildRequestMessage verifies the traffic-log line layout and the
// unknown fallbacks for blank fields.
func TestBuildRequestMessage(t *testing.T) {
	msg := buildRequestMessage("sweep->api", "http://localhost/v1/chat/completions", "gpt-4", []byte(`{"model":"gpt-4"}`))
	if !strings.HasPrefix(msg, "[SWEEP->API] ") {
		t.Fatalf("direction not uppercased: %q", msg)
	}
	if !strings.Contains(msg, "endpoint=http://localhost/v1/chat/completions") {
		t.Fatalf("endpoint missing: %q", msg)
	}
	if !strings.Contains(msg, "model=gpt-4") {
		t.Fatalf("model missing: %q", msg)
	}
	if !strings.Contains(msg, `payload={"model":"gpt-4"}`) {
		t.Fatalf("payload missing: %q", msg)
	}

	msg = buildRequestMessage("", "", "", nil)
	if !strings.Contains(msg, "endpoint=unknown") || !strings.Contains(msg, "model=unknown") {
		t.Fatalf("blank fields should fall back to unknown: %q", msg)
	}
	if !strings.Contains(msg, "payload=null") {
		t.Fatalf("nil payload should log as null: %q", msg)
	}
}

// TestFormatPayload verifies the per-type payload rendering.
func TestFormatPayload(t *testing.T) {
	if got := formatPayload("   "); got != `""` {
		t.Fatalf("blank string payload = %q", got)
	}
	if got := formatPayload([]byte{}); got != "[]" {
		t.Fatalf("empty bytes payload = %q", got)
	}
	if got := formatPayload(map[string]string{"k": "v"}); got != `{"k":"v"}` {
		t.Fatalf("map payload = %q", got)
	}
}

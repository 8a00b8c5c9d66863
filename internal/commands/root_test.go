// internal/commands/root_test.go
package commands

import (
	"strings"
	"testing"
)

// TestVersionString verifies that injected build-time variables reach the
// reported version.
func TestVersionString(t *testing.T) {
	SetVersionInfo("1.4.0", "abc1234", "2026-08-31")
	defer SetVersionInfo("dev", "none", "unknown")

	got := versionString()
	if !strings.Contains(got, "1.4.0") || !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-08-31") {
		t.Fatalf("version string missing injected values: %q", got)
	}
}

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/husk/internal/hook"
)

func TestStateSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    hook.State
		expected string
	}{
		{"installed", hook.StateCurrent, "●"},
		{"missing", hook.StateMissing, "○"},
		{"stale", hook.StateStale, "◌"},
		{"foreign", hook.StateForeign, "✕"},
		{"unknown", hook.State(42), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StateSymbol(tt.state); got != tt.expected {
				t.Errorf("StateSymbol(%v) = %q, want %q", tt.state, got, tt.expected)
			}
		})
	}
}

func TestFormatState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		state    hook.State
		expected string
	}{
		{"installed", hook.StateCurrent, "● installed"},
		{"missing", hook.StateMissing, "○ missing"},
		{"stale", hook.StateStale, "◌ stale"},
		{"foreign", hook.StateForeign, "✕ foreign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ansi.Strip(FormatState(tt.state))
			if got != tt.expected {
				t.Errorf("FormatState(%v) stripped = %q, want %q", tt.state, got, tt.expected)
			}
		})
	}
}

func TestFormatVersionRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		state    hook.State
		url      string
		contains string // substring of the stripped output
		empty    bool
	}{
		{"no version", "", hook.StateForeign, "", "", true},
		{"current", "1.0.0", hook.StateCurrent, "", "v1.0.0", false},
		{"stale", "0.9.0", hook.StateStale, "", "v0.9.0", false},
		{"with URL", "1.0.0", hook.StateCurrent, "https://example.com/husk", "v1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatVersionRef(tt.version, tt.state, tt.url)
			if tt.empty {
				if got != "" {
					t.Errorf("FormatVersionRef() = %q, want empty", got)
				}
				return
			}
			stripped := ansi.Strip(got)
			if !strings.Contains(stripped, tt.contains) {
				t.Errorf("FormatVersionRef() stripped = %q, want to contain %q", stripped, tt.contains)
			}
		})
	}
}

func TestFormatVersionRef_Hyperlink(t *testing.T) {
	t.Parallel()

	url := "https://example.com/husk"
	got := FormatVersionRef("1.0.0", hook.StateCurrent, url)

	// OSC 8 hyperlinks use \x1b]8;; prefix
	if !strings.Contains(got, "\x1b]8;;") {
		t.Errorf("FormatVersionRef with URL should contain OSC 8 sequence, got %q", got)
	}
	if !strings.Contains(got, url) {
		t.Errorf("FormatVersionRef with URL should contain the URL, got %q", got)
	}

	noURL := FormatVersionRef("1.0.0", hook.StateCurrent, "")
	if strings.Contains(noURL, "\x1b]8;;") {
		t.Errorf("FormatVersionRef without URL should not contain OSC 8 sequence, got %q", noURL)
	}
}

package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/raphi011/husk/internal/hook"
)

// Symbols for the hook states shown by the status table.
const (
	SymbolInstalled = "●"
	SymbolMissing   = "○"
	SymbolStale     = "◌"
	SymbolForeign   = "✕"
)

// StateSymbol returns the plain symbol for a hook state.
func StateSymbol(s hook.State) string {
	switch s {
	case hook.StateCurrent:
		return SymbolInstalled
	case hook.StateMissing:
		return SymbolMissing
	case hook.StateStale:
		return SymbolStale
	case hook.StateForeign:
		return SymbolForeign
	default:
		return "?"
	}
}

// stateStyle returns the style used for a hook state.
func stateStyle(s hook.State) lipgloss.Style {
	switch s {
	case hook.StateCurrent:
		return SuccessStyle
	case hook.StateStale:
		return WarningStyle
	case hook.StateForeign:
		return ErrorStyle
	default:
		return MutedStyle
	}
}

// FormatState returns a colored symbol-and-label cell for a hook state.
func FormatState(s hook.State) string {
	return stateStyle(s).Render(StateSymbol(s) + " " + s.String())
}

// FormatVersionRef returns a colored v<version> string, linked to the
// homepage recorded in the hook's marker via an OSC 8 hyperlink.
// Returns an empty string when the hook carries no version.
func FormatVersionRef(version string, s hook.State, url string) string {
	if version == "" {
		return ""
	}

	text := "v" + version
	style := stateStyle(s)

	if url != "" {
		styled := style.Underline(true).Render(text)
		return ansi.SetHyperlink(url) + styled + ansi.ResetHyperlink()
	}
	return style.Render(text)
}

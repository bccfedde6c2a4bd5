// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the status table and interactive prompts.
package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
)

// palette groups the colors used across the UI.
type palette struct {
	Primary color.Color // main accent color (titles, prompts)
	Accent  color.Color // highlight color (selected items)
	Success color.Color // installed hooks
	Warning color.Color // stale hooks
	Error   color.Color // foreign hooks
	Muted   color.Color // missing hooks, disabled text
	Normal  color.Color // standard text
	Info    color.Color // informational text
}

var darkPalette = palette{
	Primary: lipgloss.Color("62"),  // cyan/teal
	Accent:  lipgloss.Color("212"), // pink/magenta
	Success: lipgloss.Color("82"),  // green
	Warning: lipgloss.Color("214"), // orange
	Error:   lipgloss.Color("196"), // red
	Muted:   lipgloss.Color("240"), // dark gray
	Normal:  lipgloss.Color("252"), // light gray
	Info:    lipgloss.Color("244"), // gray
}

var lightPalette = palette{
	Primary: lipgloss.Color("25"),  // blue
	Accent:  lipgloss.Color("161"), // magenta
	Success: lipgloss.Color("28"),  // green
	Warning: lipgloss.Color("130"), // orange
	Error:   lipgloss.Color("124"), // red
	Muted:   lipgloss.Color("245"), // gray
	Normal:  lipgloss.Color("235"), // near black
	Info:    lipgloss.Color("240"), // dark gray
}

// Colors, defaulting to the dark palette until Init runs.
var (
	Primary color.Color = darkPalette.Primary
	Accent  color.Color = darkPalette.Accent
	Success color.Color = darkPalette.Success
	Warning color.Color = darkPalette.Warning
	Error   color.Color = darkPalette.Error
	Muted   color.Color = darkPalette.Muted
	Normal  color.Color = darkPalette.Normal
	Info    color.Color = darkPalette.Info
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)
)

// Init picks the palette matching the terminal background.
// Call this once before rendering any UI.
func Init() {
	if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
		apply(darkPalette)
	} else {
		apply(lightPalette)
	}
}

// apply updates all color and style variables to use the given palette.
func apply(p palette) {
	Primary = p.Primary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Normal = p.Normal
	Info = p.Info

	PrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(p.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(p.Info).Italic(true)
}

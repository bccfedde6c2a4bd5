// Package prompt provides simple interactive prompts.
//
// This package contains standalone interactive prompts used by the
// init command when a terminal is attached.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [Select]: Single selection from a list
//   - [MultiSelect]: Checkbox selection from a list
package prompt

package hook

import "errors"

var (
	// ErrInvalidUserHooksDir reports that the .husk/hooks source
	// directory is missing or contains no eligible executable files.
	ErrInvalidUserHooksDir = errors.New("user hooks directory not found or empty")

	// ErrEmptyUserHook reports a user hook source file with zero lines.
	ErrEmptyUserHook = errors.New("user hook script is empty")
)

package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrFileNotFound indicates the specified input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrOutputExists indicates the output file already exists.
	ErrOutputExists = errors.New("output file already exists")

	// ErrFlagConflict indicates flags that cannot be used together, or a
	// field flag that does not apply to the requested kind.
	ErrFlagConflict = errors.New("conflicting flags")

	// ErrInvalidAssignment indicates a --set value not of the form KEY=VALUE.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrNotTerminal indicates --interactive was used without a terminal on stdin.
	ErrNotTerminal = errors.New("interactive mode requires a terminal")

	// ErrClipboardUnavailable indicates the system clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

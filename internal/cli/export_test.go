package cli

// Export internal functions for testing.

// ClampParallel exports clampParallel for testing.
var ClampParallel = clampParallel

// ParseAssignments exports parseAssignments for testing.
var ParseAssignments = parseAssignments

// DefaultPromptFilename exports defaultPromptFilename for testing.
var DefaultPromptFilename = defaultPromptFilename

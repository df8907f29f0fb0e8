package tool

import "errors"

// ErrInvalid indicates an unknown AI tool name.
var ErrInvalid = errors.New("invalid AI tool")

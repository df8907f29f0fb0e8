package request

import "errors"

// ErrInvalidInput indicates a request matched none of the known variants.
var ErrInvalidInput = errors.New("invalid request")

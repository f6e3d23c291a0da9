package tokenstore

import "errors"

var (
	// ErrNotFound indicates the requested key has no stored value.
	ErrNotFound = errors.New("token not found")
)

package placeprovider

import "errors"

var (
	// ErrNotFound indicates no listing exists with the requested ID.
	ErrNotFound = errors.New("property not found")
)

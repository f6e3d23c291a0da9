package authprovider

import "errors"

var (
	// ErrInvalidCredentials indicates the provider rejected the credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

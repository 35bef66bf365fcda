package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidSession     = errors.New("invalid_session")
	ErrPasswordPolicy     = errors.New("password_policy")
	ErrStore              = errors.New("store_error")
)

// storeError tags an unexpected persistence failure so the transport layer
// can answer with a generic server error.
func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}

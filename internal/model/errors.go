package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrPasswordMismatch marks an add-user submission whose password and
	// confirmation differ. Handlers mask it as success.
	ErrPasswordMismatch = errors.New("password confirmation mismatch")
)

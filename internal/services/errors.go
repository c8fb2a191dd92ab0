package services

import "errors"

// Sentinel errors the handlers branch on.
var (
	ErrNotFound       = errors.New("record not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid credentials")
)

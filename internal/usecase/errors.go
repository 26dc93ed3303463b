package usecase

import "errors"

// Sentinel errors the handler layer maps to HTTP statuses.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

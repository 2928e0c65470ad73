package core

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredential  = errors.New("api token not found or not active")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserInactive       = errors.New("user is not active")
	ErrIntegrityViolation = errors.New("integrity violation")
)

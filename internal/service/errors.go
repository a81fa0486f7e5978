package service

import "errors"

var (
	// ErrInvalidInput marks a request the caller can fix.
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden is returned when a user acts on a record they do not own.
	ErrForbidden = errors.New("forbidden")
	// ErrEmailTaken is returned on registration with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

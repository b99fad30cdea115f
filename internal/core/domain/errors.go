package domain

import "errors"

var (
	// ErrMissingFields signals that a registration or create request lacks a
	// required field (email, password or role).
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch. Login never distinguishes the two cases to avoid account
	// enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken marks a malformed, unsigned or tampered bearer token.
	ErrInvalidToken = errors.New("invalid token")

	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrPatientNotFound = errors.New("patient not found")
)

package models

import "errors"

// Domain errors. Every failed operation is recoverable at the call site and
// leaves its collection untouched.
var (
	ErrDuplicateEmail      = errors.New("account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotAuthenticated    = errors.New("no active session")
	ErrNotFound            = errors.New("not found")
	ErrNoEligibleRecipient = errors.New("no eligible recipient account")
)

package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrAccountNotFound indicates no account exists for the given id or username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken indicates another account already uses the username,
	// compared case-insensitively.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials indicates the username or password did not match.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidAccount indicates the username or password violates domain constraints.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrAccountStoreUnavailable indicates the account store could not be reached.
	ErrAccountStoreUnavailable = errors.New("account store unavailable")
)

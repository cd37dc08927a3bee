package domain

import "errors"

// Sentinel errors for the wardrobe domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist for the owner.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates the owner already has an item with the same id.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidItem indicates a field other than the name violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrStoreUnavailable indicates the backing store could not be reached.
	// Engines never retry; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("item store unavailable")

	// ErrGatewayFailure indicates the advisory gateway failed or returned
	// content that could not be parsed. Callers substitute a default.
	ErrGatewayFailure = errors.New("advisory gateway failure")
)

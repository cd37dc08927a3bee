package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrItemAlreadyExists, "item already exists"},
		{ErrInvalidItemName, "invalid item name"},
		{ErrInvalidItem, "invalid item"},
		{ErrStoreUnavailable, "item store unavailable"},
		{ErrGatewayFailure, "advisory gateway failure"},
	}
	for _, tt := range tests {
		if tt.err == nil {
			t.Fatalf("sentinel for %q must not be nil", tt.want)
		}
		if tt.err.Error() != tt.want {
			t.Fatalf("unexpected message: %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrItemNotFound, ErrStoreUnavailable) {
		t.Fatal("ErrItemNotFound must not match ErrStoreUnavailable")
	}
	if errors.Is(ErrInvalidItem, ErrInvalidItemName) {
		t.Fatal("ErrInvalidItem must not match ErrInvalidItemName")
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrStoreUnavailable, errors.New("connection refused"))
	if !errors.Is(wrapped2, ErrStoreUnavailable) {
		t.Fatal("errors.Is must match double-wrapped ErrStoreUnavailable")
	}
}

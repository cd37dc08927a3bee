package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrAccountNotFound, ErrUsernameTaken, ErrInvalidCredentials, ErrInvalidAccount, ErrAccountStoreUnavailable}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("%w: username too short", ErrInvalidAccount)
	if !errors.Is(wrapped, ErrInvalidAccount) {
		t.Fatal("errors.Is must match wrapped ErrInvalidAccount")
	}
}

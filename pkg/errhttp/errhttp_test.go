package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	accountdomain "github.com/wardrobecapital/wardrobe/services/account/domain"
	wardrobedomain "github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", wardrobedomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrItemAlreadyExists", wardrobedomain.ErrItemAlreadyExists, http.StatusConflict},
		{"ErrInvalidItemName", wardrobedomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"ErrInvalidItem", wardrobedomain.ErrInvalidItem, http.StatusUnprocessableEntity},
		{"ErrStoreUnavailable", wardrobedomain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"ErrAccountNotFound", accountdomain.ErrAccountNotFound, http.StatusNotFound},
		{"ErrUsernameTaken", accountdomain.ErrUsernameTaken, http.StatusConflict},
		{"ErrInvalidCredentials", accountdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ErrInvalidAccount", accountdomain.ErrInvalidAccount, http.StatusUnprocessableEntity},
		{"ErrAccountStoreUnavailable", accountdomain.ErrAccountStoreUnavailable, http.StatusServiceUnavailable},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", wardrobedomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidItemName", fmt.Errorf("%w: too long", wardrobedomain.ErrInvalidItemName), http.StatusUnprocessableEntity},
		{"store error with cause", fmt.Errorf("%w: %w", wardrobedomain.ErrStoreUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"deadline exceeded", fmt.Errorf("query items: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "item not found" {
		t.Fatalf("error = %q, want %q", body["error"], "item not found")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, wardrobedomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

func TestWriteError_ProductionHidesServerErrors(t *testing.T) {
	SetProduction(true)
	t.Cleanup(func() { SetProduction(false) })

	storeErr := fmt.Errorf("%w: %w", wardrobedomain.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.5:5432"))
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"5xx replaced", storeErr, http.StatusText(http.StatusServiceUnavailable)},
		{"4xx kept", wardrobedomain.ErrItemNotFound, "item not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["error"] != tt.want {
				t.Errorf("error = %q, want %q", body["error"], tt.want)
			}
		})
	}
}

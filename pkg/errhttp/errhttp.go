// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	accountdomain "github.com/wardrobecapital/wardrobe/services/account/domain"
	wardrobedomain "github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
)

var production atomic.Bool

// SetProduction makes WriteError replace 5xx messages with the status text.
// Call it once at startup.
func SetProduction(v bool) {
	production.Store(v)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wardrobedomain.ErrItemNotFound),
		errors.Is(err, accountdomain.ErrAccountNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, wardrobedomain.ErrItemAlreadyExists),
		errors.Is(err, accountdomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, wardrobedomain.ErrInvalidItemName),
		errors.Is(err, wardrobedomain.ErrInvalidItem),
		errors.Is(err, accountdomain.ErrInvalidAccount):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, wardrobedomain.ErrStoreUnavailable),
		errors.Is(err, accountdomain.ErrAccountStoreUnavailable):
		return http.StatusServiceUnavailable // 503
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}

package auth

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

const sessionName = "wardrobe_session"
const sessionOwnerIDKey = "owner_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the owner, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid owner_id.
//
// After this middleware, handlers can safely call auth.OwnerIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ownerIDStr, ok := session.Values[sessionOwnerIDKey].(string)
			if !ok || ownerIDStr == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ownerID, err := uuid.Parse(ownerIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid owner_id in session", "owner_id", ownerIDStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithOwnerID(r.Context(), ownerID)))
		})
	}
}

// SingleTenant attaches ownerID to every request. It replaces RequireAuth
// when AUTH_MODE=single-tenant.
func SingleTenant(ownerID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithOwnerID(r.Context(), ownerID)))
		})
	}
}

// renewer is implemented by stores that keep session data server-side. Renew
// discards the stored record so the next Save issues a new id.
type renewer interface {
	Renew(r *http.Request, session *sessions.Session) error
}

// StartSession begins an authenticated session for ownerID and writes the
// cookie. Whatever session the request carried is discarded first, so an id
// issued before login never becomes an authenticated one.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, ownerID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if rs, ok := store.(renewer); ok {
		if err := rs.Renew(r, session); err != nil {
			return fmt.Errorf("renew session: %w", err)
		}
	}
	session.Values = map[interface{}]interface{}{sessionOwnerIDKey: ownerID.String()}
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// EndSession deletes the session and expires the cookie.
func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

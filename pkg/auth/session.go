// Package auth scopes requests to an owner, either through a session cookie
// or a fixed single-tenant owner.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Generate them with:
//
//	openssl rand -base64 32
package auth

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"github.com/wardrobecapital/wardrobe/pkg/cache"
)

const defaultSessionMaxAge = 7 * 24 * time.Hour

// ErrUnsupportedSessionValue is returned by Save when a session holds a
// value that is not a string keyed by a string.
var ErrUnsupportedSessionValue = errors.New("session values must be strings keyed by strings")

// SessionOptions configures NewSessionStore.
type SessionOptions struct {
	AuthKey       []byte
	EncryptionKey []byte
	// Secure restricts the cookie to HTTPS.
	Secure bool
	// MaxAge is both the cookie lifetime and the idle timeout of the Redis
	// record. Zero means seven days.
	MaxAge time.Duration
}

// RedisStore is a sessions.Store that keeps session values in Redis and
// only an encrypted session ID in the cookie.
//
// Records live at cache.Key("session", id) as JSON objects of strings. Every
// successful load pushes the expiry out by MaxAge, so a session ends after
// MaxAge without use rather than MaxAge after login.
type RedisStore struct {
	client  redis.Cmdable
	codecs  []securecookie.Codec
	options *sessions.Options
	ttl     time.Duration
}

// NewSessionStore returns a RedisStore using client.
func NewSessionStore(client redis.Cmdable, opts SessionOptions) *RedisStore {
	ttl := opts.MaxAge
	if ttl <= 0 {
		ttl = defaultSessionMaxAge
	}
	return &RedisStore{
		client: client,
		codecs: securecookie.CodecsFromPairs(opts.AuthKey, opts.EncryptionKey),
		ttl:    ttl,
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl / time.Second),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

func sessionKey(id string) string {
	return cache.Key("session", id)
}

// Get returns the session for name, cached per request.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie. A missing, tampered or
// expired cookie, or a missing Redis record, yields a fresh session and no
// error: the caller sees an unauthenticated request.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}

	values, err := s.load(r.Context(), id)
	if err != nil {
		return session, nil
	}
	session.ID = id
	session.Values = values
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes the cookie. A negative MaxAge
// deletes the Redis record and expires the cookie.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), sessionKey(session.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
			"=",
		)
	}

	data, err := encodeValues(session.Values)
	if err != nil {
		return err
	}
	if err := s.client.Set(r.Context(), sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Renew deletes the record behind session and clears its id, so the next
// Save mints a fresh one.
func (s *RedisStore) Renew(r *http.Request, session *sessions.Session) error {
	if session.ID != "" {
		if err := s.client.Del(r.Context(), sessionKey(session.ID)).Err(); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	session.ID = ""
	session.IsNew = true
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string) (map[interface{}]interface{}, error) {
	data, err := s.client.GetEx(ctx, sessionKey(id), s.ttl).Bytes()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return decodeValues(data)
}

func encodeValues(values map[interface{}]interface{}) ([]byte, error) {
	flat := make(map[string]string, len(values))
	for k, v := range values {
		ks, kok := k.(string)
		vs, vok := v.(string)
		if !kok || !vok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedSessionValue, k)
		}
		flat[ks] = vs
	}
	return json.Marshal(flat)
}

func decodeValues(data []byte) (map[interface{}]interface{}, error) {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	values := make(map[interface{}]interface{}, len(flat))
	for k, v := range flat {
		values[k] = v
	}
	return values, nil
}

package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultMaxBodyBytes      = 16 << 20
	defaultRequestsPerMinute = 100
	defaultHandlerTimeout    = 30 * time.Second
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// "*" (dev only) allows all origins but disables credentialed requests.
	CORSAllowedOrigins string
	// MaxBodyBytes caps every request body. It must leave room for a
	// base64-encoded item photo. Zero means 16 MB.
	MaxBodyBytes int64
	// RequestsPerMinute is the per-IP rate limit. Zero means 100.
	RequestsPerMinute int
	// HandlerTimeout is the per-request deadline. It should exceed the
	// advisor timeout so advice requests fail inside the handler. Zero
	// means 30s.
	HandlerTimeout time.Duration
}

func (c ServerConfig) maxBodyBytes() int64 {
	if c.MaxBodyBytes > 0 {
		return c.MaxBodyBytes
	}
	return defaultMaxBodyBytes
}

func (c ServerConfig) requestsPerMinute() int {
	if c.RequestsPerMinute > 0 {
		return c.RequestsPerMinute
	}
	return defaultRequestsPerMinute
}

func (c ServerConfig) handlerTimeout() time.Duration {
	if c.HandlerTimeout > 0 {
		return c.HandlerTimeout
	}
	return defaultHandlerTimeout
}

// Middlewares are the app-specific layers NewRouter wraps around the chi
// built-ins. Nil entries are skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Otel     func(http.Handler) http.Handler
	Logger   func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux wired with the standard middleware stack.
//
// Order (outermost first): recovery, sentry, request id, otel, logger,
// real ip, rate limit, CORS, body limit, timeout, security headers.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data: https:",
		PermissionsPolicy:     "geolocation=(), microphone=(), usb=(), magnetometer=(), gyroscope=()",
		IsDevelopment:         cfg.IsDevelopment,
	})

	r := chi.NewRouter()
	for _, m := range []func(http.Handler) http.Handler{mw.Recovery, mw.Sentry} {
		if m != nil {
			r.Use(m)
		}
	}
	r.Use(middleware.RequestID)
	for _, m := range []func(http.Handler) http.Handler{mw.Otel, mw.Logger} {
		if m != nil {
			r.Use(m)
		}
	}
	r.Use(
		middleware.RealIP,
		httprate.LimitByIP(cfg.requestsPerMinute(), time.Minute),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(cfg.maxBodyBytes()),
		middleware.Timeout(cfg.handlerTimeout()),
		sec.Handler,
	)
	return r
}

// CORSMiddleware returns a CORS handler restricted to the given allowed
// origins, a comma-separated list such as
// "https://app.example.com,http://localhost:5173". Credentials (the session
// cookie) are allowed only for explicit origins.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: !wildcard(origins),
		MaxAge:           300,
	})
}

func wildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps the request body at maxBytes. Reads past the limit
// fail with *http.MaxBytesError.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server whose write timeout leaves headroom over
// handlerTimeout.
func NewServer(addr string, handler http.Handler, handlerTimeout time.Duration) *http.Server {
	if handlerTimeout <= 0 {
		handlerTimeout = defaultHandlerTimeout
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      handlerTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

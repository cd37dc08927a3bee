package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (database.DB, cache.RedisClient and events.EventBus all do).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Check names one dependency probed by HealthHandler.
type Check struct {
	Name    string
	Checker HealthChecker
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

const healthProbeTimeout = 2 * time.Second

// HealthHandler probes every check and answers 200 with status "ok", or 503
// with status "degraded" when any of them fails. A check with a nil Checker
// is reported as "disabled" and does not degrade the status.
func HealthHandler(checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			switch {
			case c.Checker == nil:
				resp.Checks[c.Name] = "disabled"
			case c.Checker.Ping(ctx) != nil:
				resp.Status = "degraded"
				resp.Checks[c.Name] = "unreachable"
			default:
				resp.Checks[c.Name] = "ok"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

// NewProbeRouter serves GET /health over checks and GET /metrics from
// metrics. It is meant for internal ports, so it carries no CORS, rate
// limiting or security headers.
func NewProbeRouter(metrics http.Handler, checks ...Check) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", HealthHandler(checks...))
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	return r
}

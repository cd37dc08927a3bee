package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/services/account/application/handlers"
	appsvcs "github.com/wardrobecapital/wardrobe/services/account/application/services"
)

// AccountRoutes registers the /auth endpoints. Register and login are rate
// limited per IP; /auth/me requires a session.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(10, time.Minute))
			r.Post("/register", handlers.NewPostRegisterHandler(svcs, a.SessionStore, a.Logger).Execute)
			r.Post("/login", handlers.NewPostLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
		})
		r.Post("/logout", handlers.NewPostLogoutHandler(a.SessionStore, a.Logger).Execute)
		r.With(auth.RequireAuth(a.SessionStore, a.Logger)).Get("/me", handlers.NewGetMeHandler(svcs).Execute)
	})
}

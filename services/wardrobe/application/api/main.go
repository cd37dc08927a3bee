package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/application/handlers"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

// WardrobeRoutes registers item, portfolio, simulation and advice endpoints
// on the provided chi router. The caller applies the auth middleware.
func WardrobeRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Post("/analyze", handlers.NewAnalyzeImageHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
		r.Get("/portfolio", handlers.NewGetPortfolioHandler(svcs, a.Money).Execute)
		r.Post("/simulations", handlers.NewPostSimulationHandler(svcs).Execute)
		r.Post("/advice", handlers.NewPostAdviceHandler(svcs, a.Logger).Execute)
	})
}

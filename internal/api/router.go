package api

import (
	_ "goldrates/docs"
	portfoliohandler "goldrates/internal/portfolio/handler"
	priceshandler "goldrates/internal/prices/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(priceHandler *priceshandler.Handler, portfolioHandler *portfoliohandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/prices", priceHandler.GetPrices)
	router.Get("/api/prices/history", priceHandler.GetHistory)

	router.Route("/api/portfolio", func(r chi.Router) {
		r.Post("/", portfolioHandler.Create)
		r.Get("/", portfolioHandler.List)
		r.Put("/{id}", portfolioHandler.Update)
		r.Delete("/{id}", portfolioHandler.Delete)
	})

	return router
}

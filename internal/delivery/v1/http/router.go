package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/matjar-tech/catalog-backend/internal/usecase"
	"github.com/matjar-tech/catalog-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(pricingUC usecase.PricingUC, variantUC usecase.VariantUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		pricingHandler := NewPricingHandler(pricingUC, r.logger)
		variantHandler := NewVariantHandler(variantUC, r.logger)
		registerProductRoutes(v1, pricingHandler, variantHandler)
	})
}

func registerProductRoutes(router chi.Router, pricingHandler *PricingHandler, variantHandler *VariantHandler) {
	router.Route("/products/{productID}", func(pr chi.Router) {
		pr.Get("/prices", pricingHandler.getPrices)
		pr.Get("/price-range", pricingHandler.getPriceRange)
		pr.Post("/prices/sync", pricingHandler.syncPrices)
		pr.Post("/variants/generate", variantHandler.generateVariants)
	})
}

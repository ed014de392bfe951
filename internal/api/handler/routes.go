package handler

import (
	"net/http"

	"github.com/confixenvios/freight-quote-api/infrastructure/repository"
	"github.com/confixenvios/freight-quote-api/internal/api/handler/router"
	"github.com/confixenvios/freight-quote-api/internal/usecases/quoting"
	"github.com/confixenvios/freight-quote-api/internal/usecases/validating"
	"github.com/confixenvios/freight-quote-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Quotes(service quoting.Quoter) []router.Route {
	return []router.Route{
		{
			// Rota pública: é consumida pelo checkout, antes de qualquer login
			Path:    "/v1/quotes",
			Method:  http.MethodGet,
			Handler: GetQuote(service),
		},
		{
			Path:        "/v1/quotes/cache",
			Method:      http.MethodDelete,
			Handler:     FlushQuoteCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func PricingTables(repo repository.PricingTableRepository, validator validating.Validator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pricing-tables",
			Method:      http.MethodGet,
			Handler:     ListPricingTables(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pricing-tables/:id/validate",
			Method:      http.MethodPost,
			Handler:     ValidateTable(validator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/pricing-tables/:id/validation",
			Method:      http.MethodGet,
			Handler:     GetTableValidation(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

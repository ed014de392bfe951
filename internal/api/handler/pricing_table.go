package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/confixenvios/freight-quote-api/infrastructure/repository"
	"github.com/confixenvios/freight-quote-api/internal/usecases/validating"
	"github.com/confixenvios/freight-quote-api/pkg/apiErrors"
	"github.com/confixenvios/freight-quote-api/pkg/log"
)

// ListPricingTables lista as fontes de preço ativas do registro
func ListPricingTables(repo repository.PricingTableRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tables, err := repo.ListActive()
		if err != nil {
			logger.WithError(err).Error("pricing-tables: erro ao listar tabelas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao listar tabelas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tables); err != nil {
			logger.WithError(err).Error("pricing-tables: erro ao serializar resposta")
		}
	})
}

// ValidateTable dispara a auditoria estrutural de uma tabela e devolve
// o veredito com a lista completa de defeitos
func ValidateTable(service validating.Validator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.Validate(r.Context(), id)
		if err != nil {
			if errors.Is(err, validating.ErrTableNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTableNotFound, err.Error(), nil)
				return
			}

			logger.WithError(err).WithField("table_id", id).Error("pricing-tables: erro ao auditar tabela")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "erro ao auditar a tabela", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("pricing-tables: erro ao serializar resposta")
		}
	})
}

// GetTableValidation devolve o último veredito de auditoria persistido
func GetTableValidation(repo repository.PricingTableRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := repo.GetValidation(id)
		if err != nil {
			logger.WithError(err).WithField("table_id", id).Error("pricing-tables: erro ao buscar veredito")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao buscar o veredito", nil)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrTableNotFound, "tabela de preços não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("pricing-tables: erro ao serializar resposta")
		}
	})
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/confixenvios/freight-quote-api/internal/domain"
	"github.com/confixenvios/freight-quote-api/internal/usecases/quoting"
	"github.com/confixenvios/freight-quote-api/pkg/apiErrors"
	"github.com/confixenvios/freight-quote-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetQuote resolve uma cotação a partir dos parâmetros de query:
// cep, weight (kg) e quantity, com dimensões e valor declarado opcionais
func GetQuote(service quoting.Quoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := parseQuoteRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("quotes: parâmetros inválidos")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		quote, err := service.Quote(r.Context(), req)
		if err != nil {
			writeQuoteError(w, logger, req, err)
			return
		}

		logger.WithFields(log.Fields{
			"reference":   quote.Reference,
			"postal_code": quote.PostalCode,
			"table_id":    quote.TableID,
			"economic":    quote.EconomicPrice,
		}).Info("quotes: cotação resolvida")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(quote); err != nil {
			logger.WithError(err).Error("quotes: erro ao serializar resposta")
		}
	})
}

// FlushQuoteCache descarta todas as cotações em cache. Acionado pelo
// fluxo administrativo após a troca de uma tabela de preços.
func FlushQuoteCache(service quoting.Quoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		service.FlushCache()
		logger.Info("quotes: cache de cotações descartado")

		w.WriteHeader(http.StatusNoContent)
	})
}

func parseQuoteRequest(r *http.Request) (*domain.QuoteRequest, error) {
	query := r.URL.Query()

	weight, err := strconv.ParseFloat(query.Get("weight"), 64)
	if err != nil {
		return nil, errors.New("parâmetro weight é obrigatório e deve ser numérico")
	}

	req := &domain.QuoteRequest{
		PostalCode: query.Get("cep"),
		WeightKg:   weight,
		Quantity:   1,
	}

	if raw := query.Get("quantity"); raw != "" {
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			return nil, errors.New("parâmetro quantity deve ser um inteiro positivo")
		}
		req.Quantity = quantity
	}

	req.LengthCm = parseOptionalFloat(query.Get("length"))
	req.WidthCm = parseOptionalFloat(query.Get("width"))
	req.HeightCm = parseOptionalFloat(query.Get("height"))
	req.DeclaredValue = parseOptionalFloat(query.Get("declared_value"))

	return req, nil
}

func parseOptionalFloat(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}

// writeQuoteError traduz os erros do motor de cotação para a taxonomia da API
func writeQuoteError(w http.ResponseWriter, logger log.Logger, req *domain.QuoteRequest, err error) {
	var noCoverage *quoting.NoCoverageError

	switch {
	case errors.Is(err, quoting.ErrWeightExceeded):
		apiErrors.WriteError(w, apiErrors.ErrWeightExceeded, err.Error(), nil)
	case errors.Is(err, quoting.ErrInvalidDestination):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDestination, err.Error(), nil)
	case errors.Is(err, quoting.ErrInvalidWeight), errors.Is(err, quoting.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, quoting.ErrAmbiguousTier):
		apiErrors.WriteError(w, apiErrors.ErrAmbiguousTier, err.Error(), nil)
	case errors.As(err, &noCoverage):
		details := map[string]any{
			"zone":             noCoverage.ZoneLabel,
			"available_ranges": noCoverage.AvailableRanges,
		}
		apiErrors.WriteError(w, apiErrors.ErrNoCoverage, err.Error(), details)
	default:
		logger.WithFields(log.Fields{
			"postal_code": req.PostalCode,
			"weight_kg":   req.WeightKg,
			"error":       err.Error(),
		}).Error("quotes: erro inesperado na cotação")

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao resolver a cotação", nil)
	}
}

package validating

import (
	"context"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// Validator audita a estrutura de tabelas de preço: forma das colunas,
// contiguidade das faixas de peso e consistência das zonas referenciadas
type Validator interface {
	Validate(ctx context.Context, tableID string) (*domain.ValidationResult, error)
	ValidateAll(ctx context.Context) error
}

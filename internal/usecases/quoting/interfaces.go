package quoting

import (
	"context"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// Quoter resolve cotações de frete consultando todas as fontes de
// preço ativas em paralelo e reduzindo ao melhor resultado
type Quoter interface {
	Quote(ctx context.Context, req *domain.QuoteRequest) (*domain.Quote, error)
	FlushCache()
}

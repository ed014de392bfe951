package quoting

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// QuoteCache guarda cotações resolvidas pelo TTL de uma sessão de
// navegação, evitando recotar o mesmo destino a cada interação
type QuoteCache struct {
	store *gocache.Cache
}

func NewQuoteCache(cfg *config.Config) *QuoteCache {
	ttl := time.Duration(cfg.Quoting.CacheTTLMinutes) * time.Minute

	return &QuoteCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Key deriva a chave do cache dos parâmetros que alteram o resultado:
// CEP normalizado, peso e quantidade
func (c *QuoteCache) Key(postalCode string, weightKg float64, quantity int) string {
	return fmt.Sprintf("%s|%.3f|%d", postalCode, weightKg, quantity)
}

func (c *QuoteCache) Get(key string) (*domain.Quote, bool) {
	entry, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	quote, ok := entry.(*domain.Quote)
	if !ok {
		return nil, false
	}

	return quote, true
}

func (c *QuoteCache) Put(key string, quote *domain.Quote) {
	c.store.SetDefault(key, quote)
}

// Flush descarta todas as cotações em cache. Usado quando uma tabela
// de preços muda e os resultados antigos deixam de valer.
func (c *QuoteCache) Flush() {
	c.store.Flush()
}

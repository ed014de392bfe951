package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

func TestQuoteCache_KeyIncludesQuantity(t *testing.T) {
	cache := NewQuoteCache(testConfig())

	// Quantidades diferentes produzem preços diferentes, então não
	// podem compartilhar a mesma entrada
	keyOne := cache.Key("74000000", 2, 1)
	keyTwo := cache.Key("74000000", 2, 2)

	assert.NotEqual(t, keyOne, keyTwo)
}

func TestQuoteCache_PutGetFlush(t *testing.T) {
	cache := NewQuoteCache(testConfig())

	quote := &domain.Quote{Reference: "Qx91ab", EconomicPrice: 37.00}
	key := cache.Key("74000000", 2, 2)

	_, found := cache.Get(key)
	assert.False(t, found)

	cache.Put(key, quote)

	cached, found := cache.Get(key)
	assert.True(t, found)
	assert.Equal(t, quote, cached)

	cache.Flush()

	_, found = cache.Get(key)
	assert.False(t, found)
}

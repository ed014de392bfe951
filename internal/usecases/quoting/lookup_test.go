package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

func TestLookup_SingleVariant(t *testing.T) {
	rowSet := &domain.RowSet{
		Single: []*domain.PriceTier{
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 5.0, Price: 15.00, ZoneLabel: "SP Capital"},
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 5.0, WeightMax: 30.0, Price: 28.00, ZoneLabel: "SP Capital"},
			{PostalStart: "20000000", PostalEnd: "23799999", WeightMin: 0.1, WeightMax: 30.0, Price: 22.00, ZoneLabel: "RJ Capital"},
		},
	}

	tests := []struct {
		name          string
		postalCode    string
		weightKg      float64
		expectedPrice float64
		expectedZone  string
		expectMatch   bool
	}{
		{
			name:          "CEP e peso dentro da primeira faixa",
			postalCode:    "01310100",
			weightKg:      3,
			expectedPrice: 15.00,
			expectedZone:  "SP Capital",
			expectMatch:   true,
		},
		{
			name:          "Peso na fronteira inclusiva da faixa",
			postalCode:    "01310100",
			weightKg:      5.0,
			expectedPrice: 15.00,
			expectedZone:  "SP Capital",
			expectMatch:   true,
		},
		{
			name:          "CEP de outra zona resolve a faixa certa",
			postalCode:    "20040020",
			weightKg:      10,
			expectedPrice: 22.00,
			expectedZone:  "RJ Capital",
			expectMatch:   true,
		},
		{
			name:         "CEP fora de todas as faixas",
			postalCode:   "99999999",
			weightKg:     3,
			expectMatch:  false,
			expectedZone: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, zone, err := Lookup(rowSet, tt.postalCode, tt.weightKg, false)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedZone, zone)

			if tt.expectMatch {
				assert.NotNil(t, tier)
				assert.Equal(t, tt.expectedPrice, tier.Price)
			} else {
				assert.Nil(t, tier)
			}
		})
	}
}

func TestLookup_JoinedVariant(t *testing.T) {
	rowSet := &domain.RowSet{
		Coverage: []*domain.ZoneCoverage{
			{PostalStart: "01000000", PostalEnd: "05999999", ZoneLabel: "ZONA1"},
			{PostalStart: "20000000", PostalEnd: "23799999", ZoneLabel: "ZONA2"},
		},
		Prices: []*domain.PriceTier{
			{ZoneLabel: "ZONA1", WeightMin: 0.1, WeightMax: 10.0, Price: 17.00, LeadTimeDays: 2},
			{ZoneLabel: "ZONA1", WeightMin: 10.0, WeightMax: 30.0, Price: 31.00, LeadTimeDays: 2},
			{ZoneLabel: "ZONA2", WeightMin: 0.1, WeightMax: 30.0, Price: 26.00, LeadTimeDays: 4},
		},
	}

	tier, zone, err := Lookup(rowSet, "01310100", 12, false)

	assert.NoError(t, err)
	assert.Equal(t, "ZONA1", zone)
	assert.NotNil(t, tier)
	assert.Equal(t, 31.00, tier.Price)

	// CEP coberto mas peso sem faixa correspondente devolve a zona
	// para diagnóstico
	rowSet.Prices = rowSet.Prices[:1]
	tier, zone, err = Lookup(rowSet, "01310100", 20, false)

	assert.NoError(t, err)
	assert.Nil(t, tier)
	assert.Equal(t, "ZONA1", zone)
}

func TestLookup_AmbiguousTiers(t *testing.T) {
	// Duas faixas cobrem 8,5 kg
	rowSet := &domain.RowSet{
		Single: []*domain.PriceTier{
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 10.0, Price: 15.00},
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 8.0, WeightMax: 30.0, Price: 28.00},
		},
	}

	// Modo permissivo: vence a faixa de menor peso mínimo
	tier, _, err := Lookup(rowSet, "01310100", 8.5, false)
	assert.NoError(t, err)
	assert.Equal(t, 15.00, tier.Price)

	// Modo estrito: ambiguidade vira erro
	tier, _, err = Lookup(rowSet, "01310100", 8.5, true)
	assert.ErrorIs(t, err, ErrAmbiguousTier)
	assert.Nil(t, tier)
}

func TestLookup_OverlapResolvedByLowestWeightMin(t *testing.T) {
	// A faixa de menor peso mínimo aparece depois na fonte; o desempate
	// ignora a ordem das linhas
	rowSet := &domain.RowSet{
		Single: []*domain.PriceTier{
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 5.0, WeightMax: 30.0, Price: 28.00},
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 10.0, Price: 15.00},
		},
	}

	tier, _, err := Lookup(rowSet, "01310100", 8.5, false)

	assert.NoError(t, err)
	assert.Equal(t, 15.00, tier.Price)
	assert.Equal(t, 0.1, tier.WeightMin)
}

func TestLookup_JoinedVariantOverlapResolvedByLowestWeightMin(t *testing.T) {
	rowSet := &domain.RowSet{
		Coverage: []*domain.ZoneCoverage{
			{PostalStart: "01000000", PostalEnd: "05999999", ZoneLabel: "ZONA1"},
		},
		Prices: []*domain.PriceTier{
			{ZoneLabel: "ZONA1", WeightMin: 5.0, WeightMax: 30.0, Price: 31.00},
			{ZoneLabel: "ZONA1", WeightMin: 0.1, WeightMax: 10.0, Price: 17.00},
		},
	}

	tier, zone, err := Lookup(rowSet, "01310100", 8.5, false)

	assert.NoError(t, err)
	assert.Equal(t, "ZONA1", zone)
	assert.Equal(t, 17.00, tier.Price)
}

func TestAvailableRanges(t *testing.T) {
	rowSet := &domain.RowSet{
		Single: []*domain.PriceTier{
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 5.0, WeightMax: 10.0},
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 5.0},
			{PostalStart: "20000000", PostalEnd: "23799999", WeightMin: 0.1, WeightMax: 30.0},
		},
	}

	ranges := AvailableRanges(rowSet, "01310100")

	assert.Equal(t, []domain.WeightRange{
		{MinKg: 0.1, MaxKg: 5.0},
		{MinKg: 5.0, MaxKg: 10.0},
	}, ranges)

	assert.Nil(t, AvailableRanges(rowSet, "99999999"))
}

package quoting

import (
	"sort"

	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// Lookup encontra a faixa de preço para o par CEP + peso em um conjunto
// normalizado de linhas. Na variante de duas abas o match é em duas
// etapas: a cobertura resolve o rótulo da zona e a aba de preços resolve
// a faixa de peso daquela zona.
//
// Quando mais de uma faixa contém o peso, vence a de menor weight_min,
// independente da ordem das linhas na fonte; em modo estrito a
// ambiguidade vira ErrAmbiguousTier. O rótulo da zona é devolvido mesmo
// sem match de peso, para diagnóstico de cobertura.
func Lookup(rowSet *domain.RowSet, postalCode string, weightKg float64, strict bool) (*domain.PriceTier, string, error) {
	if rowSet.Empty() {
		return nil, "", nil
	}

	if rowSet.Joined() {
		return lookupJoined(rowSet, postalCode, weightKg, strict)
	}

	return lookupSingle(rowSet.Single, postalCode, weightKg, strict)
}

func lookupSingle(rows []*domain.PriceTier, postalCode string, weightKg float64, strict bool) (*domain.PriceTier, string, error) {
	var matched *domain.PriceTier
	zoneLabel := ""

	for _, row := range rows {
		if !row.MatchesPostal(postalCode) {
			continue
		}

		if zoneLabel == "" {
			zoneLabel = row.ZoneLabel
		}

		if !row.MatchesWeight(weightKg) {
			continue
		}

		if matched == nil {
			matched = row
			continue
		}

		if strict {
			return nil, zoneLabel, ErrAmbiguousTier
		}

		if row.WeightMin < matched.WeightMin {
			matched = row
		}
	}

	if matched != nil {
		return matched, matched.ZoneLabel, nil
	}

	return nil, zoneLabel, nil
}

func lookupJoined(rowSet *domain.RowSet, postalCode string, weightKg float64, strict bool) (*domain.PriceTier, string, error) {
	zoneLabel := ""

	for _, coverage := range rowSet.Coverage {
		if postalCode >= coverage.PostalStart && postalCode <= coverage.PostalEnd {
			zoneLabel = coverage.ZoneLabel
			break
		}
	}

	if zoneLabel == "" {
		return nil, "", nil
	}

	var matched *domain.PriceTier

	for _, row := range rowSet.Prices {
		if row.ZoneLabel != zoneLabel || !row.MatchesWeight(weightKg) {
			continue
		}

		if matched == nil {
			matched = row
			continue
		}

		if strict {
			return nil, zoneLabel, ErrAmbiguousTier
		}

		if row.WeightMin < matched.WeightMin {
			matched = row
		}
	}

	return matched, zoneLabel, nil
}

// AvailableRanges lista as faixas de peso que a fonte cobre para o CEP,
// em ordem crescente. Alimenta o diagnóstico de sem-cobertura.
func AvailableRanges(rowSet *domain.RowSet, postalCode string) []domain.WeightRange {
	if rowSet.Empty() {
		return nil
	}

	var ranges []domain.WeightRange

	if rowSet.Joined() {
		zoneLabel := ""
		for _, coverage := range rowSet.Coverage {
			if postalCode >= coverage.PostalStart && postalCode <= coverage.PostalEnd {
				zoneLabel = coverage.ZoneLabel
				break
			}
		}
		if zoneLabel == "" {
			return nil
		}

		for _, row := range rowSet.Prices {
			if row.ZoneLabel == zoneLabel {
				ranges = append(ranges, domain.WeightRange{MinKg: row.WeightMin, MaxKg: row.WeightMax})
			}
		}
	} else {
		for _, row := range rowSet.Single {
			if row.MatchesPostal(postalCode) {
				ranges = append(ranges, domain.WeightRange{MinKg: row.WeightMin, MaxKg: row.WeightMax})
			}
		}
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].MinKg < ranges[j].MinKg
	})

	return ranges
}

package domain

// Limites de peso do negócio, em quilogramas
const (
	MinTierWeightKg = 0.1
	MaxTierWeightKg = 30.0
	// WeightEpsilon é a tolerância usada na detecção de lacunas entre faixas
	WeightEpsilon = 0.001
)

// PriceTier é uma linha normalizada de uma tabela de preços:
// faixa de CEP, faixa de peso (inclusiva) e preço na unidade declarada da tabela
type PriceTier struct {
	PostalStart  string  `json:"postal_start"`
	PostalEnd    string  `json:"postal_end"`
	WeightMin    float64 `json:"weight_min"`
	WeightMax    float64 `json:"weight_max"`
	Price        float64 `json:"price"`
	ExpressPrice float64 `json:"express_price,omitempty"` // 0 = sem tier expresso próprio
	LeadTimeDays int     `json:"lead_time_days"`
	ZoneLabel    string  `json:"zone_label,omitempty"`
}

// MatchesPostal verifica se o CEP normalizado cai na faixa da linha
func (t *PriceTier) MatchesPostal(postalCode string) bool {
	return t.PostalStart != "" && postalCode >= t.PostalStart && postalCode <= t.PostalEnd
}

// MatchesWeight verifica se o peso cai na faixa inclusiva da linha
func (t *PriceTier) MatchesWeight(weightKg float64) bool {
	return weightKg >= t.WeightMin && weightKg <= t.WeightMax
}

// ZoneCoverage é uma linha de cobertura: faixa de CEP -> rótulo de zona.
// Usada apenas na variante de duas abas (cobertura + preço)
type ZoneCoverage struct {
	PostalStart string `json:"postal_start"`
	PostalEnd   string `json:"postal_end"`
	ZoneLabel   string `json:"zone_label"`
}

// RowSet é o conjunto normalizado de linhas de uma fonte, em uma de duas
// variantes: uma única aba autocontida (Single) ou o join de uma aba de
// cobertura com uma aba de preços por zona (Coverage + Prices).
// A classificação acontece uma única vez, na leitura da fonte.
type RowSet struct {
	Single   []*PriceTier    `json:"single,omitempty"`
	Coverage []*ZoneCoverage `json:"coverage,omitempty"`
	Prices   []*PriceTier    `json:"prices,omitempty"`
}

// Joined indica se o conjunto veio da estratégia de duas abas
func (r *RowSet) Joined() bool {
	return r != nil && len(r.Coverage) > 0
}

// Empty indica que a fonte não produziu nenhuma linha utilizável
func (r *RowSet) Empty() bool {
	return r == nil || (len(r.Single) == 0 && (len(r.Coverage) == 0 || len(r.Prices) == 0))
}

// Rows retorna as linhas de preço da variante ativa
func (r *RowSet) Rows() []*PriceTier {
	if r == nil {
		return nil
	}
	if r.Joined() {
		return r.Prices
	}
	return r.Single
}

// WeightRange é uma faixa de peso disponível, usada em diagnósticos
// de cobertura para o usuário final
type WeightRange struct {
	MinKg float64 `json:"min_kg"`
	MaxKg float64 `json:"max_kg"`
}
